package resp

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		command   string
		args      []string
		expectErr bool
	}{
		{"command with args", "*3\r\n$7\r\nCONNECT\r\n$1\r\n1\r\n$1\r\n2\r\n", "CONNECT", []string{"1", "2"}, false},
		{"bare command", "*1\r\n$4\r\nPING\r\n", "PING", nil, false},
		{"missing array prefix", "CONNECT 1 2\r\n", "", nil, true},
		{"length mismatch", "*2\r\n$7\r\nCONNECT\r\n$5\r\n1\r\n", "", nil, true},
		{"empty array", "*0\r\n", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, args, err := Decode(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("expected error: %v, got: %v", tt.expectErr, err)
			}
			if err != nil {
				return
			}
			if command != tt.command {
				t.Fatalf("expected command %s, got %s", tt.command, command)
			}
			if len(args) != len(tt.args) {
				t.Fatalf("expected %d args, got %d", len(tt.args), len(args))
			}
			for i, arg := range tt.args {
				if args[i] != arg {
					t.Fatalf("expected arg %s at index %d, got %s", arg, i, args[i])
				}
			}
		})
	}
}

func TestEncodeCommandRoundTrip(t *testing.T) {
	command, args, err := Decode(EncodeCommand("LEVEL 1 4"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if command != "LEVEL" {
		t.Fatalf("expected command LEVEL, got %s", command)
	}
	if len(args) != 2 || args[0] != "1" || args[1] != "4" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestEncodeBoolean(t *testing.T) {
	if EncodeBoolean(true) != ":1\r\n" {
		t.Fatalf("expected :1 for true")
	}
	if EncodeBoolean(false) != ":0\r\n" {
		t.Fatalf("expected :0 for false")
	}
}

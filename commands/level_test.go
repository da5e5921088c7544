package commands

import (
	"testing"
)

// TestRegisterLevelCommand tests the RegisterLevelCommand function.
func TestRegisterLevelCommand(t *testing.T) {
	registry := NewRegistry()
	RegisterLevelCommand(registry)

	if _, exists := registry.(*commandRegistry).commands[LevelCommand]; !exists {
		t.Errorf("command %s not registered", LevelCommand)
	}
}

// TestExecuteLevel tests the executeLevelCommand function.
func TestExecuteLevel(t *testing.T) {
	store := NewMockStore(6)
	// chain 1-2-3-4, element 5 and 6 isolated
	for _, pair := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "4"}} {
		if err := store.Connect(pair[0], pair[1]); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	tests := []struct {
		name        string
		args        []string
		expectedMsg string
	}{
		{"one hop", []string{"1", "2"}, ":1\r\n"},
		{"three hops", []string{"1", "4"}, ":3\r\n"},
		{"reverse direction", []string{"4", "1"}, ":3\r\n"},
		{"self pair", []string{"2", "2"}, ":0\r\n"},
		{"unreachable pair", []string{"1", "5"}, ":0\r\n"},
		{"out of range", []string{"0", "4"}, "-element out of range\r\n"},
	}

	executionHook := executeLevelCommand()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := executionHook(tt.args, store)
			if result != tt.expectedMsg {
				t.Errorf("expected result: %q, got: %q", tt.expectedMsg, result)
			}
		})
	}
}

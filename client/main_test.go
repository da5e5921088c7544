package main

import (
	"bufio"
	"io"
	"net"
	"strings"
	"testing"
	"time"
)

// MockConn is a mock implementation of net.Conn interface for testing
type MockConn struct {
	readData  string
	writeData string
}

func (m *MockConn) Read(b []byte) (n int, err error) {
	copy(b, m.readData)
	return len(m.readData), io.EOF
}

func (m *MockConn) Write(b []byte) (n int, err error) {
	m.writeData = string(b)
	return len(b), nil
}

func (m *MockConn) Close() error                       { return nil }
func (m *MockConn) LocalAddr() net.Addr                { return nil }
func (m *MockConn) RemoteAddr() net.Addr               { return nil }
func (m *MockConn) SetDeadline(t time.Time) error      { return nil }
func (m *MockConn) SetReadDeadline(t time.Time) error  { return nil }
func (m *MockConn) SetWriteDeadline(t time.Time) error { return nil }

// TestConnectToServer tests the connectToServer function
func TestConnectToServer(t *testing.T) {
	_, err := connectToServer("invalid-address")
	if err == nil {
		t.Error("Expected an error for invalid address")
	}
}

// TestSendCommand tests that commands go out framed as RESP arrays
func TestSendCommand(t *testing.T) {
	conn := &MockConn{}
	if err := sendCommand(conn, "CONNECT 1 2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	expected := "*3\r\n$7\r\nCONNECT\r\n$1\r\n1\r\n$1\r\n2\r\n"
	if conn.writeData != expected {
		t.Errorf("expected %q on the wire, got %q", expected, conn.writeData)
	}
}

// TestReadReply tests the readReply function across reply types
func TestReadReply(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		serverErr bool
	}{
		{"simple string", "+OK\r\n", "OK", false},
		{"integer", ":3\r\n", "3", false},
		{"error", "-element 9 not in [1, 6]\r\n", "element 9 not in [1, 6]", true},
		{"bulk string", "$4\r\nPONG\r\n", "PONG", false},
		{"array", "*2\r\n$1\r\n2\r\n$1\r\n5\r\n", "2 5", false},
		{"empty array", "*0\r\n", "(empty)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := bufio.NewReader(strings.NewReader(tt.input))
			reply, serverErr, err := readReply(reader)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if serverErr != tt.serverErr {
				t.Errorf("expected serverErr %v, got %v", tt.serverErr, serverErr)
			}
			if reply != tt.expected {
				t.Errorf("expected reply %q, got %q", tt.expected, reply)
			}
		})
	}
}

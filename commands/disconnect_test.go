package commands

import (
	"testing"
)

// TestRegisterDisconnectCommand tests the RegisterDisconnectCommand function.
func TestRegisterDisconnectCommand(t *testing.T) {
	registry := NewRegistry()
	RegisterDisconnectCommand(registry)

	reg, exists := registry.(*commandRegistry).commands[DisconnectCommand]
	if !exists {
		t.Errorf("command %s not registered", DisconnectCommand)
	}
	if !reg.IsWrite {
		t.Errorf("command %s should be a write command", DisconnectCommand)
	}
}

// TestExecuteDisconnect tests the executeDisconnectCommand function.
func TestExecuteDisconnect(t *testing.T) {
	store := NewMockStore(6)
	if err := store.Connect("1", "2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	executionHook := executeDisconnectCommand()

	result := executionHook([]string{"1", "2"}, store)
	if result != "+OK\r\n" {
		t.Errorf("expected +OK, got %q", result)
	}

	// second disconnect hits a missing edge
	result = executionHook([]string{"1", "2"}, store)
	if result != "-elements are not connected\r\n" {
		t.Errorf("expected missing edge error, got %q", result)
	}

	result = executionHook([]string{"0", "2"}, store)
	if result != "-element out of range\r\n" {
		t.Errorf("expected out of range error, got %q", result)
	}
}

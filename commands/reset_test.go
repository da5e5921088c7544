package commands

import (
	"testing"
)

// TestValidateReset tests the validateResetCommand function.
func TestValidateReset(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expectErr bool
	}{
		{"no args", []string{}, false},
		{"explicit size", []string{"10"}, false},
		{"too many args", []string{"10", "20"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validationHook := validateResetCommand()
			err := validationHook(tt.args)
			if (err != nil) != tt.expectErr {
				t.Errorf("expected error: %v, got: %v", tt.expectErr, err)
			}
		})
	}
}

// TestExecuteReset tests the executeResetCommand function.
func TestExecuteReset(t *testing.T) {
	store := NewMockStore(4)
	if err := store.Connect("1", "2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	executionHook := executeResetCommand()

	if result := executionHook([]string{"10"}, store); result != "+OK\r\n" {
		t.Errorf("expected +OK, got %q", result)
	}
	if store.Size() != 10 {
		t.Errorf("expected size 10 after reset, got %d", store.Size())
	}
	if store.Edges() != 0 {
		t.Errorf("expected no edges after reset, got %d", store.Edges())
	}

	// bare reset falls back to the default universe size
	if result := executionHook(nil, store); result != "+OK\r\n" {
		t.Errorf("expected +OK, got %q", result)
	}
	if store.Size() != DefaultResetSize {
		t.Errorf("expected size %d after bare reset, got %d", DefaultResetSize, store.Size())
	}

	if result := executionHook([]string{"0"}, store); result != "-invalid size\r\n" {
		t.Errorf("expected invalid size error, got %q", result)
	}
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestRemoteRejectedError(t *testing.T) {
	err := NewRemoteRejectedError("SELECT * FROM users", "InvalidQueryExpression", 400, "req-123", "syntax error")

	expected := `store rejected query "SELECT * FROM users": syntax error (code InvalidQueryExpression, status 400, request id req-123)`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrRemoteRejected) {
		t.Error("RemoteRejectedError should match ErrRemoteRejected")
	}

	if !IsRemoteRejected(err) {
		t.Error("IsRemoteRejected should return true for RemoteRejectedError")
	}

	if IsTransport(err) {
		t.Error("IsTransport should return false for RemoteRejectedError")
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("select failed", cause)

	expected := "transport failure: select failed: connection refused"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrTransport) {
		t.Error("TransportError should match ErrTransport")
	}

	if !IsTransport(err) {
		t.Error("IsTransport should return true for TransportError")
	}

	// Test unwrapping to the underlying cause
	if !errors.Is(err, cause) {
		t.Error("TransportError should unwrap to its cause")
	}

	// Without a cause the message stands alone
	bare := NewTransportError("network unreachable", nil)
	if bare.Error() != "transport failure: network unreachable" {
		t.Errorf("Unexpected message: %q", bare.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("/data/output")

	expected := `path "/data/output" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestNotDirectoryError(t *testing.T) {
	err := NewNotDirectoryError("/data/output/part-0000")

	expected := `path "/data/output/part-0000" is not a directory`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotDirectory) {
		t.Error("NotDirectoryError should match ErrNotDirectory")
	}

	if !IsNotDirectory(err) {
		t.Error("IsNotDirectory should return true for NotDirectoryError")
	}
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		message  string
		expected string
	}{
		{
			name:     "WithKey",
			key:      "simpledb.domain",
			message:  "required option missing",
			expected: `invalid configuration for "simpledb.domain": required option missing`,
		},
		{
			name:     "WithoutKey",
			key:      "",
			message:  "empty configuration map",
			expected: "invalid configuration: empty configuration map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigError(tt.key, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsInvalidConfig(err) {
				t.Error("IsInvalidConfig should return true for ConfigError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	err := NewRemoteRejectedError("SELECT COUNT(*) FROM users", "Throttling", 503, "req-456", "rate exceeded")
	wrapped := fmt.Errorf("planning split 3: %w", err)

	if !errors.Is(wrapped, ErrRemoteRejected) {
		t.Error("Wrapped error should still match ErrRemoteRejected")
	}

	var rejected *RemoteRejectedError
	if !errors.As(wrapped, &rejected) {
		t.Fatal("errors.As should recover the RemoteRejectedError")
	}
	if rejected.StatusCode != 503 {
		t.Errorf("Expected status 503, got %d", rejected.StatusCode)
	}
}

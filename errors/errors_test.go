/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConnectionError(t *testing.T) {
	cause := errors.New("server selection timeout")
	err := NewConnectionError("mongodb://***@localhost:27017", cause)

	// Test error message
	expected := `connection to mongodb://***@localhost:27017 failed: server selection timeout`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrConnection) {
		t.Error("ConnectionError should match ErrConnection")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Error("ConnectionError should unwrap to its cause")
	}

	// Test helper function
	if !IsConnection(err) {
		t.Error("IsConnection should return true for ConnectionError")
	}
}

func TestQueryError(t *testing.T) {
	cause := errors.New("cursor timeout")
	err := NewQueryError("analytics", "events", "find", cause)

	// Test error message
	expected := `find failed on analytics.events: cursor timeout`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrQuery) {
		t.Error("QueryError should match ErrQuery")
	}

	// Test helper function
	if !IsQuery(err) {
		t.Error("IsQuery should return true for QueryError")
	}

	// A query error is not a connection error
	if IsConnection(err) {
		t.Error("IsConnection should return false for QueryError")
	}
}

func TestConversionError(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		err      error
		expected string
	}{
		{
			name:     "with backend",
			backend:  "gota",
			err:      ErrBackendUnavailable,
			expected: `table conversion with backend "gota" failed: table backend not registered`,
		},
		{
			name:     "without backend",
			backend:  "",
			err:      errors.New("bad document"),
			expected: `table conversion failed: bad document`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConversionError(tt.backend, tt.err)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsConversion(err) {
				t.Error("IsConversion should return true for ConversionError")
			}
		})
	}
}

func TestConversionErrorUnwrapsSentinel(t *testing.T) {
	err := NewConversionError("gota", ErrBackendUnavailable)

	if !errors.Is(err, ErrBackendUnavailable) {
		t.Error("ConversionError should unwrap to ErrBackendUnavailable")
	}
	if errors.Is(err, ErrUnknownBackend) {
		t.Error("ConversionError around ErrBackendUnavailable should not match ErrUnknownBackend")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError([]string{"zip", "age", "name"})

	// Missing columns are reported sorted, as a set
	expected := `missing required columns: {age, name, zip}`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("errors.As should extract *ValidationError")
	}
	if len(verr.MissingColumns) != 3 {
		t.Errorf("Expected 3 missing columns, got %d", len(verr.MissingColumns))
	}
}

func TestWrappedErrorsKeepIdentity(t *testing.T) {
	inner := NewQueryError("analytics", "events", "count", errors.New("socket closed"))
	wrapped := fmt.Errorf("batch fetch: %w", inner)

	if !IsQuery(wrapped) {
		t.Error("IsQuery should see through fmt.Errorf wrapping")
	}

	var qerr *QueryError
	if !errors.As(wrapped, &qerr) {
		t.Fatal("errors.As should extract *QueryError from wrapped error")
	}
	if qerr.Op != "count" {
		t.Errorf("Expected op %q, got %q", "count", qerr.Op)
	}
}

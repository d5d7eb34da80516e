/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestIsTransientError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"timeout text", errors.New("operation timeout"), true},
		{"connection text", errors.New("Connection refused"), true},
		{"network text", errors.New("network is unreachable"), true},
		{"temporary text", errors.New("temporary failure in name resolution"), true},
		{"unavailable text", errors.New("service unavailable"), true},
		{"busy text", errors.New("server busy"), true},
		{"overload text", errors.New("system overload"), true},
		{"rate limit text", errors.New("Rate Limit exceeded"), true},
		{"mixed case", errors.New("CONNECTION reset by peer"), true},
		{"wrapped keyword", fmt.Errorf("fetch page: %w", errors.New("socket timeout")), true},
		{"net timeout class", &net.DNSError{Err: "lookup failed", IsTimeout: true}, true},
		{"context deadline class", context.DeadlineExceeded, true},
		{"value error", errors.New("invalid document shape"), false},
		{"permission error", errors.New("access denied"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransientError(tt.err); got != tt.want {
				t.Errorf("IsTransientError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsDatabaseError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"connection text", errors.New("connection closed"), true},
		{"timeout text", errors.New("query timeout"), true},
		{"server text", errors.New("server selection error"), true},
		{"network text", errors.New("network partition"), true},
		{"unavailable text", errors.New("replica set unavailable"), true},
		{"lock text", errors.New("could not acquire lock"), true},
		{"deadlock text", errors.New("Deadlock detected"), true},
		{"transaction text", errors.New("transaction aborted"), true},
		{"context deadline class", context.DeadlineExceeded, true},
		{"parse error", errors.New("unexpected token"), false},
		{"missing field", errors.New("field age not present"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDatabaseError(tt.err); got != tt.want {
				t.Errorf("IsDatabaseError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

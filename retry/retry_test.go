/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func quietPolicy(maxAttempts int) Policy {
	return New(maxAttempts, time.Millisecond, 5*time.Millisecond, 2.0).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	val, err := Do(context.Background(), quietPolicy(3), func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if val != "ok" {
		t.Errorf("Expected value %q, got %q", "ok", val)
	}
	if calls != 1 {
		t.Errorf("Expected 1 invocation, got %d", calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	val, err := Do(context.Background(), quietPolicy(3), func(ctx context.Context) (int, error) {
		calls++
		if calls < 2 {
			return 0, errors.New("connection reset")
		}
		return 42, nil
	})

	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if val != 42 {
		t.Errorf("Expected value 42, got %d", val)
	}
	if calls != 2 {
		t.Errorf("Expected 2 invocations, got %d", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("connection refused")
	calls := 0
	_, err := Do(context.Background(), quietPolicy(3), func(ctx context.Context) (int, error) {
		calls++
		return 0, fmt.Errorf("failure %d: %w", calls, sentinel)
	})

	if err == nil {
		t.Fatal("Expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("Expected exactly 3 invocations, got %d", calls)
	}

	// The last failure is surfaced, wrapped with the attempt count
	if !strings.Contains(err.Error(), "all 3 attempts failed") {
		t.Errorf("Expected attempt count in error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "failure 3") {
		t.Errorf("Expected last failure in error, got %q", err.Error())
	}
	if !errors.Is(err, sentinel) {
		t.Error("Exhaustion error should unwrap to the last failure")
	}
}

func TestDoNonRetryableStopsImmediately(t *testing.T) {
	fatal := errors.New("syntax oversight in aggregation stage")
	calls := 0
	p := quietPolicy(5).WithRetryable(IsDatabaseError)

	_, err := Do(context.Background(), p, func(ctx context.Context) (int, error) {
		calls++
		return 0, fatal
	})

	if calls != 1 {
		t.Errorf("Expected exactly 1 invocation for non-retryable error, got %d", calls)
	}
	if !errors.Is(err, fatal) {
		t.Errorf("Expected the original error surfaced unchanged, got %v", err)
	}
	if strings.Contains(err.Error(), "attempts failed") {
		t.Errorf("Non-retryable error should not be wrapped as exhaustion, got %q", err.Error())
	}
}

func TestDoInvocationCounts(t *testing.T) {
	tests := []struct {
		name         string
		successAfter int // invocation on which op succeeds; 0 = never
		maxAttempts  int
		wantCalls    int
		wantErr      bool
	}{
		{"immediate success", 1, 3, 1, false},
		{"success on second", 2, 3, 2, false},
		{"success on last", 3, 3, 3, false},
		{"never succeeds", 0, 3, 3, true},
		{"single attempt policy", 0, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			_, err := Do(context.Background(), quietPolicy(tt.maxAttempts), func(ctx context.Context) (bool, error) {
				calls++
				if tt.successAfter != 0 && calls >= tt.successAfter {
					return true, nil
				}
				return false, errors.New("temporary failure")
			})

			if calls != tt.wantCalls {
				t.Errorf("Expected %d invocations, got %d", tt.wantCalls, calls)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDoHonorsContextDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New(3, time.Second, time.Second, 2.0).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	calls := 0
	start := time.Now()
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := Do(ctx, p, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("timeout talking upstream")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 invocation before cancellation, got %d", calls)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Cancellation should interrupt the backoff sleep, took %v", elapsed)
	}
}

func TestNextDelay(t *testing.T) {
	tests := []struct {
		name    string
		current time.Duration
		factor  float64
		max     time.Duration
		want    time.Duration
	}{
		{"doubles", time.Second, 2.0, 10 * time.Second, 2 * time.Second},
		{"caps at max", 8 * time.Second, 2.0, 10 * time.Second, 10 * time.Second},
		{"stays at cap", 10 * time.Second, 2.0, 10 * time.Second, 10 * time.Second},
		{"factor below one clamps to one", time.Second, 0.5, 10 * time.Second, time.Second},
		{"no cap when max is zero", 4 * time.Second, 2.0, 0, 8 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextDelay(tt.current, tt.factor, tt.max); got != tt.want {
				t.Errorf("Expected delay %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPresetSchedules(t *testing.T) {
	db := DatabasePolicy()
	if db.MaxAttempts != 3 || db.BaseDelay != time.Second || db.MaxDelay != 10*time.Second || db.BackoffFactor != 2.0 {
		t.Errorf("Unexpected database preset: %+v", db)
	}
	if db.Retryable == nil || !db.Retryable(errors.New("deadlock detected")) {
		t.Error("Database preset should retry database-class errors")
	}

	nw := NetworkPolicy()
	if nw.MaxAttempts != 5 || nw.BaseDelay != 500*time.Millisecond || nw.MaxDelay != 5*time.Second || nw.BackoffFactor != 2.0 {
		t.Errorf("Unexpected network preset: %+v", nw)
	}
	if nw.Retryable == nil || !nw.Retryable(errors.New("rate limit exceeded")) {
		t.Error("Network preset should retry transient errors")
	}

	q := QuickPolicy()
	if q.MaxAttempts != 2 || q.BaseDelay != 500*time.Millisecond {
		t.Errorf("Unexpected quick preset: %+v", q)
	}
}

func TestWrapProducesResult(t *testing.T) {
	okOp := Wrap(quietPolicy(2), func(ctx context.Context) (string, error) {
		return "value", nil
	})
	res := okOp(context.Background())
	if res.IsError() {
		t.Fatalf("Expected Ok result, got error %v", res.Error())
	}
	if got := res.MustGet(); got != "value" {
		t.Errorf("Expected %q, got %q", "value", got)
	}

	failOp := Wrap(quietPolicy(2), func(ctx context.Context) (string, error) {
		return "", errors.New("connection dropped")
	})
	res = failOp(context.Background())
	if !res.IsError() {
		t.Fatal("Expected Err result for failing operation")
	}
	if fallback := res.OrElse("fallback"); fallback != "fallback" {
		t.Errorf("Expected fallback value, got %q", fallback)
	}
}

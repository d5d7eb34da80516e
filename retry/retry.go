/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/mo"
)

// Policy describes a bounded exponential backoff schedule and the class of
// errors worth re-attempting. The zero value is not useful; build policies
// with New or one of the presets.
type Policy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64

	// Retryable classifies an error as worth another attempt. Nil means
	// every error is retryable.
	Retryable func(error) bool

	// Logger receives one warn event per failed non-final attempt and one
	// error event on exhaustion. Nil means slog.Default().
	Logger *slog.Logger
}

// New builds a policy with the given schedule and no error classifier.
func New(maxAttempts int, baseDelay, maxDelay time.Duration, backoffFactor float64) Policy {
	return Policy{
		MaxAttempts:   maxAttempts,
		BaseDelay:     baseDelay,
		MaxDelay:      maxDelay,
		BackoffFactor: backoffFactor,
	}
}

// WithRetryable returns a copy of the policy with the given classifier.
func (p Policy) WithRetryable(fn func(error) bool) Policy {
	p.Retryable = fn
	return p
}

// WithLogger returns a copy of the policy with the given log sink.
func (p Policy) WithLogger(logger *slog.Logger) Policy {
	p.Logger = logger
	return p
}

// DatabasePolicy is the preset for database operations: 3 attempts,
// exponential backoff from 1s capped at 10s, retrying database-class errors.
func DatabasePolicy() Policy {
	return New(3, 1*time.Second, 10*time.Second, 2.0).WithRetryable(IsDatabaseError)
}

// NetworkPolicy is the preset for network operations: 5 attempts,
// exponential backoff from 500ms capped at 5s, retrying transient errors.
func NetworkPolicy() Policy {
	return New(5, 500*time.Millisecond, 5*time.Second, 2.0).WithRetryable(IsTransientError)
}

// QuickPolicy is the preset for cheap operations where a single fast
// re-attempt is enough: 2 attempts, 500ms backoff capped at 2s.
func QuickPolicy() Policy {
	return New(2, 500*time.Millisecond, 2*time.Second, 2.0).WithRetryable(IsTransientError)
}

// Do executes op under the policy. Attempts are numbered from 1. After a
// failing attempt, if attempts remain and the error is retryable, Do sleeps
// for the current delay and multiplies it by the backoff factor, capped at
// MaxDelay. A non-retryable error stops immediately. When all attempts are
// exhausted the last observed error is surfaced, wrapped with the attempt
// count. The sleep honors context cancellation.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	var zero T

	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = func(error) bool { return true }
	}

	delay := p.BaseDelay
	for attempt := 1; ; attempt++ {
		val, err := op(ctx)
		if err == nil {
			return val, nil
		}

		if attempt >= p.MaxAttempts {
			logger.Error("all retry attempts failed",
				"attempts", p.MaxAttempts,
				"error", err)
			return zero, fmt.Errorf("all %d attempts failed: %w", p.MaxAttempts, err)
		}
		if !retryable(err) {
			return zero, err
		}

		logger.Warn("attempt failed, retrying",
			"attempt", attempt,
			"max_attempts", p.MaxAttempts,
			"delay", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
		delay = nextDelay(delay, p.BackoffFactor, p.MaxDelay)
	}
}

// Wrap binds a policy to an operation and returns a callable that resolves
// to a Result instead of a bare (value, error) pair.
func Wrap[T any](p Policy, op func(context.Context) (T, error)) func(context.Context) mo.Result[T] {
	return func(ctx context.Context) mo.Result[T] {
		return mo.TupleToResult(Do(ctx, p, op))
	}
}

func nextDelay(current time.Duration, factor float64, max time.Duration) time.Duration {
	if factor < 1 {
		factor = 1
	}
	next := time.Duration(float64(current) * factor)
	if max > 0 && next > max {
		next = max
	}
	return next
}

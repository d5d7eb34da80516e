/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package retry

import (
	"context"
	"errors"
	"net"
	"strings"
)

// Keyword tables for error classification. Matching is by error class first
// (net timeouts, context deadline), then by case-insensitive substring on the
// error text. Classifiers are pure; they never perform I/O.
var (
	transientKeywords = []string{
		"timeout",
		"connection",
		"network",
		"temporary",
		"unavailable",
		"busy",
		"overload",
		"rate limit",
	}

	databaseKeywords = []string{
		"connection",
		"timeout",
		"server",
		"network",
		"unavailable",
		"lock",
		"deadlock",
		"transaction",
	}
)

// IsTransientError reports whether an error looks like a temporary
// infrastructure failure worth retrying: timeouts, connection and network
// problems, overload and rate limiting.
func IsTransientError(err error) bool {
	return matchesClass(err) || matchesAny(err, transientKeywords)
}

// IsDatabaseError reports whether an error looks like a retryable database
// failure: connection and server problems, lock contention, deadlocks,
// aborted transactions.
func IsDatabaseError(err error) bool {
	return matchesClass(err) || matchesAny(err, databaseKeywords)
}

func matchesClass(err error) bool {
	if err == nil {
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func matchesAny(err error, keywords []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

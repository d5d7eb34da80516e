/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docsource

import (
	"time"
)

// Filter construction helpers for common query shapes. The maps they build
// use standard document-store operator syntax and remain opaque to this
// package; only the driver interprets them.

// Eq matches documents whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{field: value}
}

// And merges several filters into one. On key collisions the last filter
// wins; combine disjoint criteria.
func And(filters ...Filter) Filter {
	merged := Filter{}
	for _, f := range filters {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

// TimeRange matches documents whose field lies in [start, end).
func TimeRange(field string, start, end time.Time) Filter {
	return Filter{field: map[string]any{"$gte": start, "$lt": end}}
}

// After matches documents whose field is at or after ts.
func After(field string, ts time.Time) Filter {
	return Filter{field: map[string]any{"$gte": ts}}
}

// Before matches documents whose field is strictly before ts.
func Before(field string, ts time.Time) Filter {
	return Filter{field: map[string]any{"$lt": ts}}
}

// LastHours matches documents whose field is within the trailing n hours.
func LastHours(field string, n int) Filter {
	return After(field, time.Now().Add(-time.Duration(n)*time.Hour))
}

// LastDays matches documents whose field is within the trailing n days.
func LastDays(field string, n int) Filter {
	return After(field, time.Now().AddDate(0, 0, -n))
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// coerceColumn converts every cell to the target type. Conversion is
// all-or-nothing so a half-cast column can never be observed, with one
// exception: datetime cells that fail to parse become nulls, matching how
// messy timestamps are usually scrubbed rather than fatal.
func coerceColumn(cells []any, t Type) ([]any, error) {
	out := make([]any, len(cells))
	for i, v := range cells {
		if v == nil {
			continue
		}
		switch t {
		case TypeInt:
			n, err := toInt64(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = n
		case TypeFloat:
			x, err := toFloat64(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = x
		case TypeString:
			out[i] = toString(v)
		case TypeBool:
			b, err := toBool(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = b
		case TypeDatetime:
			ts, err := toTime(v)
			if err != nil {
				out[i] = nil
				continue
			}
			out[i] = ts
		default:
			return nil, fmt.Errorf("unsupported type %q", t)
		}
	}
	return out, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, nil
		}
		// Numeric strings like "30.0" truncate the way floats do.
		if x, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int64(x), nil
		}
		return 0, fmt.Errorf("cannot convert %q to int", n)
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float", n)
		}
		return x, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case time.Time:
		return s.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed, nil
		}
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
		return false, fmt.Errorf("cannot convert %q to bool", b)
	case int:
		return b != 0, nil
	case int32:
		return b != 0, nil
	case int64:
		return b != 0, nil
	case float64:
		return b != 0, nil
	default:
		return false, fmt.Errorf("cannot convert %T to bool", v)
	}
}

func toTime(v any) (time.Time, error) {
	switch ts := v.(type) {
	case time.Time:
		return ts, nil
	case strfmt.DateTime:
		return time.Time(ts), nil
	case interface{ Time() time.Time }:
		// Covers driver datetime wrappers without importing them.
		return ts.Time(), nil
	case string:
		if dt, err := strfmt.ParseDateTime(ts); err == nil {
			return time.Time(dt), nil
		}
		if day, err := time.Parse("2006-01-02", ts); err == nil {
			return day, nil
		}
		return time.Time{}, fmt.Errorf("cannot parse %q as datetime", ts)
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to datetime", v)
	}
}

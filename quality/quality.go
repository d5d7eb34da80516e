/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package quality

import (
	"log/slog"

	"github.com/samber/mo"

	"github.com/suparena/docframe/docsource"
	"github.com/suparena/docframe/table"
)

// Completeness thresholds. Overall completeness below lowCompleteness and
// frames with more than highNullRatio nulls per column log at warn.
const (
	lowCompleteness = 0.95
	highNullRatio   = 0.10
)

// LogResultFailure logs a warning when the result holds an error and
// returns the result unchanged, so it drops into a call chain as a tap.
func LogResultFailure[T any](logger *slog.Logger, res mo.Result[T], operation string, args ...any) mo.Result[T] {
	if logger == nil {
		logger = slog.Default()
	}
	if res.IsError() {
		all := append([]any{"operation", operation, "error", res.Error()}, args...)
		logger.Warn("operation failed", all...)
	}
	return res
}

// Completeness returns the fraction of documents carrying a non-nil value
// for each field, in the range [0, 1]. An empty document slice yields nil.
func Completeness(docs []docsource.Document, fields []string) map[string]float64 {
	if len(docs) == 0 {
		return nil
	}
	out := make(map[string]float64, len(fields))
	for _, field := range fields {
		present := 0
		for _, doc := range docs {
			if v, ok := doc[field]; ok && v != nil {
				present++
			}
		}
		out[field] = float64(present) / float64(len(docs))
	}
	return out
}

// LogCompleteness logs per-field completeness for the documents and
// returns them unchanged. Overall completeness below 95% logs at warn,
// and each incomplete field gets a debug line.
func LogCompleteness(logger *slog.Logger, docs []docsource.Document, fields []string, operation string) []docsource.Document {
	if logger == nil {
		logger = slog.Default()
	}
	if len(docs) == 0 {
		logger.Info("no documents to analyze", "operation", operation)
		return docs
	}

	stats := Completeness(docs, fields)

	overall := 1.0
	if len(fields) > 0 {
		sum := 0.0
		for _, frac := range stats {
			sum += frac
		}
		overall = sum / float64(len(fields))
	}

	args := []any{
		"operation", operation,
		"total_documents", len(docs),
		"overall_completeness", overall,
	}
	if overall < lowCompleteness {
		logger.Warn("document completeness below threshold", args...)
	} else {
		logger.Info("document completeness", args...)
	}

	for _, field := range fields {
		frac := stats[field]
		if frac < 1.0 {
			missing := len(docs) - int(frac*float64(len(docs))+0.5)
			logger.Debug("field missing in documents",
				"operation", operation,
				"field", field,
				"missing", missing,
				"completeness", frac)
		}
	}
	return docs
}

// NullCounts returns the number of nil cells per column.
func NullCounts(f table.Frame) map[string]int {
	out := make(map[string]int, len(f.Columns()))
	for _, col := range f.Columns() {
		n := 0
		for row := 0; row < f.NumRows(); row++ {
			if f.Value(row, col) == nil {
				n++
			}
		}
		if n > 0 {
			out[col] = n
		}
	}
	return out
}

// LogFrameStats logs shape and null statistics for an assembled frame and
// returns the result unchanged. Failed results are logged through
// LogResultFailure instead. Empty frames and frames whose null count
// exceeds 10% of the cells in a column log at warn.
func LogFrameStats(logger *slog.Logger, res mo.Result[table.Frame], operation string) mo.Result[table.Frame] {
	if logger == nil {
		logger = slog.Default()
	}
	if res.IsError() {
		return LogResultFailure(logger, res, operation)
	}

	f := res.MustGet()
	nulls := NullCounts(f)
	total := 0
	for _, n := range nulls {
		total += n
	}

	logger.Info("frame assembled",
		"operation", operation,
		"backend", f.Backend(),
		"rows", f.NumRows(),
		"columns", len(f.Columns()),
		"total_nulls", total)

	if f.NumRows() == 0 {
		logger.Warn("frame is empty", "operation", operation)
		return res
	}
	for col, n := range nulls {
		if float64(n) > float64(f.NumRows())*highNullRatio {
			logger.Warn("high null ratio in column",
				"operation", operation,
				"column", col,
				"nulls", n,
				"rows", f.NumRows())
		}
	}
	return res
}

// LogBatchStats logs size statistics for a batch slice and returns it
// unchanged. A max batch more than twice the min logs at warn.
func LogBatchStats(logger *slog.Logger, batches [][]docsource.Document, operation string) [][]docsource.Document {
	if logger == nil {
		logger = slog.Default()
	}
	if len(batches) == 0 {
		logger.Warn("no batches to process", "operation", operation)
		return batches
	}

	total := 0
	min, max := len(batches[0]), len(batches[0])
	for _, b := range batches {
		total += len(b)
		if len(b) < min {
			min = len(b)
		}
		if len(b) > max {
			max = len(b)
		}
	}

	logger.Info("batch stats",
		"operation", operation,
		"batch_count", len(batches),
		"total_documents", total,
		"min_batch_size", min,
		"max_batch_size", max)

	if min > 0 && max > min*2 {
		logger.Warn("significant batch size variation",
			"operation", operation,
			"min_batch_size", min,
			"max_batch_size", max)
	}
	return batches
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gotaframe

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/suparena/docframe/docsource"
	"github.com/suparena/docframe/table"
)

func init() {
	table.Register(engine{})
}

type engine struct{}

func (engine) Name() string {
	return table.BackendGota
}

func (engine) Build(docs []docsource.Document) (table.Frame, error) {
	// LoadMaps rejects an empty slice, but an empty input must still
	// assemble into an empty frame.
	if len(docs) == 0 {
		return emptyFrame{}, nil
	}

	records := make([]map[string]interface{}, len(docs))
	for i, d := range docs {
		records[i] = map[string]interface{}(d)
	}

	df := dataframe.LoadMaps(records)
	if df.Err != nil {
		return nil, fmt.Errorf("loading documents into dataframe: %w", df.Err)
	}
	return &frame{df: df}, nil
}

// frame adapts a gota DataFrame. Missing keys surface as NA cells in typed
// columns and empty strings in string columns, which is how gota renders
// absent values.
type frame struct {
	df dataframe.DataFrame
}

func (f *frame) Backend() string {
	return table.BackendGota
}

func (f *frame) Columns() []string {
	return f.df.Names()
}

func (f *frame) NumRows() int {
	return f.df.Nrow()
}

func (f *frame) Value(row int, column string) any {
	if row < 0 || row >= f.df.Nrow() {
		return nil
	}
	s := f.df.Col(column)
	if s.Err != nil {
		return nil
	}
	e := s.Elem(row)
	if e.IsNA() {
		return nil
	}
	return e.Val()
}

// DataFrame exposes the underlying gota value for callers that want the
// full dataframe API.
func (f *frame) DataFrame() dataframe.DataFrame {
	return f.df
}

func (f *frame) Cast(column string, t table.Type) error {
	s := f.df.Col(column)
	if s.Err != nil {
		return fmt.Errorf("no column %q", column)
	}

	st, ok := seriesType(t)
	if !ok {
		return fmt.Errorf("backend %q does not support %s columns", table.BackendGota, t)
	}

	// gota silently NAs unparsable cells; pre-validating with gota's own
	// element conversions keeps the cast all-or-nothing instead.
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		rec := e.String()
		if rec == "" || rec == "NaN" {
			// Absent keys render this way; they become NA, not failures.
			continue
		}
		if err := convertible(e, t); err != nil {
			return fmt.Errorf("casting column %q to %s: row %d: %w", column, t, i, err)
		}
	}

	mutated := f.df.Mutate(series.New(s, st, column))
	if mutated.Err != nil {
		return fmt.Errorf("casting column %q to %s: %w", column, t, mutated.Err)
	}
	f.df = mutated
	return nil
}

func seriesType(t table.Type) (series.Type, bool) {
	switch t {
	case table.TypeInt:
		return series.Int, true
	case table.TypeFloat:
		return series.Float, true
	case table.TypeString:
		return series.String, true
	case table.TypeBool:
		return series.Bool, true
	default:
		// No datetime dtype in gota.
		return "", false
	}
}

// convertible reports whether a cell survives the element conversion
// series.New will apply for the target type.
func convertible(e series.Element, t table.Type) error {
	switch t {
	case table.TypeInt:
		if _, err := e.Int(); err != nil {
			return fmt.Errorf("cannot convert %q to int", e.String())
		}
	case table.TypeFloat:
		if math.IsNaN(e.Float()) {
			return fmt.Errorf("cannot convert %q to float", e.String())
		}
	case table.TypeBool:
		if _, err := e.Bool(); err != nil {
			return fmt.Errorf("cannot convert %q to bool", e.String())
		}
	}
	return nil
}

// emptyFrame stands in for a dataframe over zero documents.
type emptyFrame struct{}

func (emptyFrame) Backend() string {
	return table.BackendGota
}

func (emptyFrame) Columns() []string {
	return nil
}

func (emptyFrame) NumRows() int {
	return 0
}

func (emptyFrame) Value(int, string) any {
	return nil
}

func (emptyFrame) Cast(column string, _ table.Type) error {
	return fmt.Errorf("no column %q", column)
}

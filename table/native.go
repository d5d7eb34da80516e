/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package table

import (
	"fmt"
	"sort"

	"github.com/suparena/docframe/docsource"
)

func init() {
	Register(nativeEngine{})
}

// nativeEngine is the dependency-free columnar engine shipped with the
// package. Cells keep their dynamic types; missing keys become nil cells.
type nativeEngine struct{}

func (nativeEngine) Name() string {
	return BackendNative
}

func (nativeEngine) Build(docs []docsource.Document) (Frame, error) {
	f := &nativeFrame{
		data:  make(map[string][]any),
		types: make(map[string]Type),
		rows:  len(docs),
	}

	// Column order is first document appearance, keys sorted within each
	// document so the layout is deterministic.
	seen := make(map[string]bool)
	for _, doc := range docs {
		var fresh []string
		for k := range doc {
			if !seen[k] {
				seen[k] = true
				fresh = append(fresh, k)
			}
		}
		sort.Strings(fresh)
		f.columns = append(f.columns, fresh...)
	}

	for _, col := range f.columns {
		cells := make([]any, len(docs))
		for i, doc := range docs {
			if v, ok := doc[col]; ok {
				cells[i] = v
			}
		}
		f.data[col] = cells
	}
	return f, nil
}

type nativeFrame struct {
	columns []string
	data    map[string][]any
	types   map[string]Type
	rows    int
}

func (f *nativeFrame) Backend() string {
	return BackendNative
}

func (f *nativeFrame) Columns() []string {
	out := make([]string, len(f.columns))
	copy(out, f.columns)
	return out
}

func (f *nativeFrame) NumRows() int {
	return f.rows
}

func (f *nativeFrame) Value(row int, column string) any {
	if row < 0 || row >= f.rows {
		return nil
	}
	cells, ok := f.data[column]
	if !ok {
		return nil
	}
	return cells[row]
}

// Type reports the coerced type of a column, or empty for raw columns.
func (f *nativeFrame) Type(column string) Type {
	return f.types[column]
}

func (f *nativeFrame) Cast(column string, t Type) error {
	cells, ok := f.data[column]
	if !ok {
		return fmt.Errorf("no column %q", column)
	}
	converted, err := coerceColumn(cells, t)
	if err != nil {
		return fmt.Errorf("casting column %q to %s: %w", column, t, err)
	}
	f.data[column] = converted
	f.types[column] = t
	return nil
}

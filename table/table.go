/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package table

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/samber/mo"

	"github.com/suparena/docframe/docsource"
	"github.com/suparena/docframe/errors"
)

// Type tags a column with the dtype a schema wants it coerced to.
type Type string

const (
	TypeInt      Type = "int"
	TypeFloat    Type = "float"
	TypeString   Type = "string"
	TypeDatetime Type = "datetime"
	TypeBool     Type = "bool"
)

// ParseType normalizes a schema tag. The second return is false for tags
// outside the supported set.
func ParseType(tag string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(tag)))
	switch t {
	case TypeInt, TypeFloat, TypeString, TypeDatetime, TypeBool:
		return t, true
	}
	return "", false
}

// Schema maps column names to the types they should be coerced to.
// Columns absent from the schema keep their raw values.
type Schema map[string]Type

// Frame is a typed columnar view over assembled documents. Implementations
// decide their own storage; the assembler only relies on this surface.
type Frame interface {
	// Backend names the engine that produced the frame.
	Backend() string
	// Columns returns the column names in frame order.
	Columns() []string
	// NumRows returns the number of rows.
	NumRows() int
	// Value returns the cell at (row, column), or nil when the cell is
	// null or the coordinates are out of range.
	Value(row int, column string) any
	// Cast coerces a column to the given type in place. A failed cast
	// leaves the column untouched and reports why.
	Cast(column string, t Type) error
}

// Engine builds frames from raw documents. Engines self-register through
// Register, usually from an init func.
type Engine interface {
	Name() string
	Build(docs []docsource.Document) (Frame, error)
}

// Backend names recognized by the assembler. BackendGota requires importing
// the gotaframe package for its side effect.
const (
	BackendNative = "native"
	BackendGota   = "gota"

	DefaultBackend = BackendNative
)

// knownBackends maps every recognized backend name to the import path that
// registers its engine. An empty path means the engine ships with this
// package. Names outside this map are unknown rather than unregistered.
var knownBackends = map[string]string{
	BackendNative: "",
	BackendGota:   "github.com/suparena/docframe/table/gotaframe",
}

var (
	enginesMu sync.RWMutex
	engines   = make(map[string]Engine)
)

// Register makes an engine available under its name. It panics if the
// engine is nil or already registered, mirroring database/sql.Register.
func Register(e Engine) {
	if e == nil {
		panic("table: Register engine is nil")
	}
	enginesMu.Lock()
	defer enginesMu.Unlock()
	name := e.Name()
	if _, dup := engines[name]; dup {
		panic("table: Register called twice for engine " + name)
	}
	engines[name] = e
}

// Backends returns the names of all registered engines, sorted.
func Backends() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func engineFor(name string) (Engine, error) {
	if name == "" {
		name = DefaultBackend
	}
	path, known := knownBackends[name]
	if !known {
		return nil, errors.NewConversionError(name,
			fmt.Errorf("%w: %q (known backends: %s)", errors.ErrUnknownBackend, name, strings.Join(knownNames(), ", ")))
	}

	enginesMu.RLock()
	e, ok := engines[name]
	enginesMu.RUnlock()
	if !ok {
		if path != "" {
			return nil, errors.NewConversionError(name,
				fmt.Errorf("%w: %q (forgotten import of %q?)", errors.ErrBackendUnavailable, name, path))
		}
		return nil, errors.NewConversionError(name,
			fmt.Errorf("%w: %q", errors.ErrBackendUnavailable, name))
	}
	return e, nil
}

func knownNames() []string {
	names := make([]string, 0, len(knownBackends))
	for name := range knownBackends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assembler turns document slices into frames with one engine, resolved
// once at construction.
type Assembler struct {
	engine Engine
	logger *slog.Logger
}

// AssemblerOption customizes an Assembler.
type AssemblerOption func(*Assembler)

// WithLogger sets the logger used for coercion diagnostics.
func WithLogger(l *slog.Logger) AssemblerOption {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAssembler resolves the backend by name. An empty name selects
// DefaultBackend. Unrecognized names and recognized-but-unregistered
// backends fail with distinct errors so callers can tell a typo from a
// missing import.
func NewAssembler(backend string, opts ...AssemblerOption) (*Assembler, error) {
	engine, err := engineFor(backend)
	if err != nil {
		return nil, err
	}
	a := &Assembler{
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Backend returns the name of the engine the assembler was built with.
func (a *Assembler) Backend() string {
	return a.engine.Name()
}

// Assemble builds a frame from the documents and then applies the schema
// column by column in sorted field order. Empty input yields an empty frame.
// A column that fails to coerce keeps its raw values; unknown schema tags
// are skipped. Assemble never fails because of the schema.
func (a *Assembler) Assemble(docs []docsource.Document, schema Schema) (Frame, error) {
	frame, err := a.engine.Build(docs)
	if err != nil {
		return nil, errors.NewConversionError(a.engine.Name(), err)
	}
	if len(schema) == 0 {
		return frame, nil
	}

	present := make(map[string]bool, len(frame.Columns()))
	for _, c := range frame.Columns() {
		present[c] = true
	}

	fields := make([]string, 0, len(schema))
	for f := range schema {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		t, ok := ParseType(string(schema[field]))
		if !ok {
			a.logger.Debug("skipping unknown schema type",
				"column", field,
				"type", string(schema[field]))
			continue
		}
		if !present[field] {
			continue
		}
		if err := frame.Cast(field, t); err != nil {
			a.logger.Debug("schema coercion failed, keeping column raw",
				"column", field,
				"type", string(t),
				"error", err)
		}
	}
	return frame, nil
}

// Assemble is the one-shot convenience over NewAssembler plus
// (*Assembler).Assemble, lifted into a Result.
func Assemble(docs []docsource.Document, schema Schema, backend string) mo.Result[Frame] {
	a, err := NewAssembler(backend)
	if err != nil {
		return mo.Err[Frame](err)
	}
	return mo.TupleToResult(a.Assemble(docs, schema))
}

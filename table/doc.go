// Package table assembles document slices into typed columnar frames.
//
// An Assembler binds to one backend engine at construction and turns
// []docsource.Document values into a Frame, applying an optional Schema
// that coerces columns to int, float, string, datetime or bool:
//
//	asm, err := table.NewAssembler(table.BackendNative)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame, err := asm.Assemble(docs, table.Schema{
//	    "age":       table.TypeInt,
//	    "joined_at": table.TypeDatetime,
//	})
//
// Schema application is best effort: a column that cannot be coerced keeps
// its raw values and the frame is still returned. Missing keys become null
// cells, and an empty document slice assembles into an empty frame.
//
// # Backends
//
// The package ships the "native" engine. Alternate engines register
// themselves the way database/sql drivers do; the gota-backed engine is
// enabled with a blank import:
//
//	import _ "github.com/suparena/docframe/table/gotaframe"
//
//	asm, err := table.NewAssembler(table.BackendGota)
//
// NewAssembler distinguishes a backend name it has never heard of
// (ErrUnknownBackend) from one that is recognized but whose engine was not
// imported (ErrBackendUnavailable), so typos and missing imports produce
// different errors.
package table

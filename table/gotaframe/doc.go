// Package gotaframe backs table frames with gota dataframes. Importing the
// package registers the "gota" engine:
//
//	import (
//	    "github.com/suparena/docframe/table"
//	    _ "github.com/suparena/docframe/table/gotaframe"
//	)
//
//	asm, err := table.NewAssembler(table.BackendGota)
//
// gota stores cells as parsed strings, so cell values read back with the
// types gota assigns (int rather than int64, for example), and missing keys
// render as NA in typed columns. The engine has no datetime dtype; schemas
// asking for one leave the column as strings.
//
// Frames built here also expose the raw dataframe through DataFrame() for
// callers that want gota's filtering and aggregation directly.
package gotaframe

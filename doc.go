/*
Package docframe turns document collections into typed columnar frames,
with validation, retry and release handling wrapped around every fetch.

The library is organized as small composable layers:
  - Fetching: validated connections with retry, eager materialization
  - Transforms: pure document-slice combinators (filter, map, limit)
  - Assembly: pluggable table backends with best-effort schema coercion
  - Pipelines: a fluent builder tying the layers together

Key Features:
  - Result-typed public API for explicit error flow
  - Retry with exponential backoff and pluggable failure predicates
  - Connection string validation and sanitized logging
  - Batched fetching for large collections
  - Pluggable table backends registered like database/sql drivers
  - Comprehensive mock document source for testing

Basic Usage:

	import (
	    "github.com/suparena/docframe"
	    "github.com/suparena/docframe/docsource"
	    "github.com/suparena/docframe/table"
	    _ "github.com/suparena/docframe/docsource/mongodb"
	)

	res := docframe.NewFetcher().
	    Pipeline("mongodb://localhost:27017", "shop", "orders", docsource.Filter{"status": "completed"}, 1000).
	    Filter(func(d docsource.Document) bool { return d["total"] != nil }).
	    ApplySchema(table.Schema{"total": table.TypeFloat, "created_at": table.TypeDatetime}).
	    Validate("order_id", "total").
	    Execute(ctx)

	frame, err := res.Get()

For more information, see the documentation at https://github.com/suparena/docframe
*/
package docframe

// Package transform provides composable document-slice transforms used
// between fetching and table assembly.
//
// Transforms are plain closures over []docsource.Document, built with
// Filter, Map and Limit and composed left to right with Pipe:
//
//	clean := transform.Pipe(
//	    transform.Filter(func(d docsource.Document) bool { return d["active"] == true }),
//	    transform.Map(normalize),
//	    transform.Limit(100),
//	)
//	docs = clean(docs)
//
// Every transform is pure and total: no errors, no side effects, safe to
// reuse across calls.
package transform

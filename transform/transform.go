/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package transform

import (
	"github.com/suparena/docframe/docsource"
)

// Func rewrites a document slice. Implementations must treat the input as
// read-only and return the slice to pass downstream.
type Func func(docs []docsource.Document) []docsource.Document

// Filter keeps the documents the predicate accepts, preserving order.
func Filter(pred func(docsource.Document) bool) Func {
	return func(docs []docsource.Document) []docsource.Document {
		out := make([]docsource.Document, 0, len(docs))
		for _, d := range docs {
			if pred(d) {
				out = append(out, d)
			}
		}
		return out
	}
}

// Map applies fn to every document, preserving order and length.
func Map(fn func(docsource.Document) docsource.Document) Func {
	return func(docs []docsource.Document) []docsource.Document {
		out := make([]docsource.Document, len(docs))
		for i, d := range docs {
			out[i] = fn(d)
		}
		return out
	}
}

// Limit truncates to the first n documents. Non-positive n keeps nothing;
// a slice already shorter than n passes through unchanged.
func Limit(n int) Func {
	return func(docs []docsource.Document) []docsource.Document {
		if n <= 0 {
			return nil
		}
		if len(docs) <= n {
			return docs
		}
		return docs[:n]
	}
}

// Pipe composes transforms left to right. Pipe() is the identity.
func Pipe(fns ...Func) Func {
	return func(docs []docsource.Document) []docsource.Document {
		for _, fn := range fns {
			docs = fn(docs)
		}
		return docs
	}
}

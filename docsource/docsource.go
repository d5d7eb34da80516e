/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docsource

import (
	"context"
)

// Document is one schema-less record from a source collection. Field values
// are dynamically typed: scalars, nested mappings, or sequences.
type Document map[string]any

// Filter expresses match predicates against a collection. It is opaque to
// this package and passed through to the driver unmodified.
type Filter map[string]any

// FindOptions carries paging options for a find call. Zero values mean
// "not set".
type FindOptions struct {
	Skip  int64
	Limit int64
}

// Client is a live handle to a document store. A client is acquired from a
// Connector, must be usable only after a successful Ping, and must be
// released with Close exactly once.
type Client interface {
	// Ping verifies the server is reachable and answering.
	Ping(ctx context.Context) error

	// Find runs a filtered query against database.collection and eagerly
	// materializes the matching documents in natural result order.
	Find(ctx context.Context, database, collection string, filter Filter, opts FindOptions) ([]Document, error)

	// Count returns the number of documents matching the filter.
	Count(ctx context.Context, database, collection string, filter Filter) (int64, error)

	// ListDatabases returns the names of the databases visible to the client.
	ListDatabases(ctx context.Context) ([]string, error)

	// ListCollections returns the collection names inside a database.
	ListCollections(ctx context.Context, database string) ([]string, error)

	// Close releases the client. Close errors are advisory; callers treat
	// release as fire-and-forget.
	Close(ctx context.Context) error
}

// Connector opens clients for a connection string. Implementations register
// themselves with RegisterConnector for the schemes they serve.
type Connector interface {
	Connect(ctx context.Context, uri string) (Client, error)
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docsource

import (
	"context"
)

// Query is a fluent builder for filtered, paged reads against one
// collection. Every With method returns a derived copy; the receiver is
// never mutated, so partially built queries can be shared and extended
// safely.
type Query struct {
	client     Client
	database   string
	collection string
	filter     Filter
	skip       int64
	limit      int64
}

// NewQuery starts a query against database.collection through the given
// client.
func NewQuery(client Client, database, collection string) *Query {
	return &Query{
		client:     client,
		database:   database,
		collection: collection,
	}
}

// WithFilter merges the given criteria into the query filter. Keys already
// present are overwritten.
func (q *Query) WithFilter(criteria Filter) *Query {
	next := q.clone()
	if next.filter == nil {
		next.filter = make(Filter, len(criteria))
	}
	for k, v := range criteria {
		next.filter[k] = v
	}
	return next
}

// WithSkip sets the number of documents to skip server-side.
func (q *Query) WithSkip(n int64) *Query {
	next := q.clone()
	next.skip = n
	return next
}

// WithLimit caps the number of documents returned.
func (q *Query) WithLimit(n int64) *Query {
	next := q.clone()
	next.limit = n
	return next
}

// Filter returns a copy of the accumulated filter.
func (q *Query) Filter() Filter {
	if q.filter == nil {
		return nil
	}
	out := make(Filter, len(q.filter))
	for k, v := range q.filter {
		out[k] = v
	}
	return out
}

// Execute runs the query and materializes the matching documents.
func (q *Query) Execute(ctx context.Context) ([]Document, error) {
	return q.client.Find(ctx, q.database, q.collection, q.filter, FindOptions{Skip: q.skip, Limit: q.limit})
}

// Count returns the number of documents matching the accumulated filter.
// Skip and limit do not apply to counts.
func (q *Query) Count(ctx context.Context) (int64, error) {
	return q.client.Count(ctx, q.database, q.collection, q.filter)
}

func (q *Query) clone() *Query {
	next := &Query{
		client:     q.client,
		database:   q.database,
		collection: q.collection,
		skip:       q.skip,
		limit:      q.limit,
	}
	if q.filter != nil {
		next.filter = make(Filter, len(q.filter))
		for k, v := range q.filter {
			next.filter[k] = v
		}
	}
	return next
}

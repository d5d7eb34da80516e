/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides in-memory implementations of the docsource Client
// and Connector interfaces for testing.
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/suparena/docframe/docsource"
)

// Client is a scripted in-memory implementation of docsource.Client. Data is
// organized by database and collection; failures can be made permanent or
// scheduled for the first N calls to exercise retry paths.
type Client struct {
	mu   sync.Mutex
	data map[string]map[string][]docsource.Document

	pingErr  error
	findErr  error
	countErr error
	closeErr error

	pingFailures  int
	findFailures  int
	countFailures int
	scheduledErr  error

	pingCalls  int
	findCalls  int
	countCalls int
	closeCalls int
}

// NewClient creates an empty mock client.
func NewClient() *Client {
	return &Client{
		data: make(map[string]map[string][]docsource.Document),
	}
}

// WithCollection seeds a collection with documents.
func (c *Client) WithCollection(database, collection string, docs []docsource.Document) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data[database] == nil {
		c.data[database] = make(map[string][]docsource.Document)
	}
	c.data[database][collection] = append(c.data[database][collection], docs...)
	return c
}

// WithPingError makes every Ping return err.
func (c *Client) WithPingError(err error) *Client {
	c.pingErr = err
	return c
}

// WithFindError makes every Find return err.
func (c *Client) WithFindError(err error) *Client {
	c.findErr = err
	return c
}

// WithCountError makes every Count return err.
func (c *Client) WithCountError(err error) *Client {
	c.countErr = err
	return c
}

// WithCloseError makes every Close return err.
func (c *Client) WithCloseError(err error) *Client {
	c.closeErr = err
	return c
}

// WithScheduledFailures makes the first pings Ping calls, finds Find calls
// and counts Count calls fail with err before the client recovers. Useful
// for exercising retry schedules.
func (c *Client) WithScheduledFailures(pings, finds, counts int, err error) *Client {
	c.pingFailures = pings
	c.findFailures = finds
	c.countFailures = counts
	c.scheduledErr = err
	return c
}

// Ping implements docsource.Client.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pingCalls++
	if c.pingErr != nil {
		return c.pingErr
	}
	if c.pingFailures > 0 {
		c.pingFailures--
		return c.scheduledErr
	}
	return nil
}

// Find implements docsource.Client. It supports top-level equality criteria
// plus {"$gt","$gte","$lt","$lte"} operator maps over numbers, strings, and
// timestamps, which covers the filters this library builds itself.
func (c *Client) Find(ctx context.Context, database, collection string, filter docsource.Filter, opts docsource.FindOptions) ([]docsource.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.findCalls++
	if c.findErr != nil {
		return nil, c.findErr
	}
	if c.findFailures > 0 {
		c.findFailures--
		return nil, c.scheduledErr
	}

	matched := c.matchLocked(database, collection, filter)

	if opts.Skip > 0 {
		if opts.Skip >= int64(len(matched)) {
			return []docsource.Document{}, nil
		}
		matched = matched[opts.Skip:]
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

// Count implements docsource.Client.
func (c *Client) Count(ctx context.Context, database, collection string, filter docsource.Filter) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.countCalls++
	if c.countErr != nil {
		return 0, c.countErr
	}
	if c.countFailures > 0 {
		c.countFailures--
		return 0, c.scheduledErr
	}

	return int64(len(c.matchLocked(database, collection, filter))), nil
}

// ListDatabases implements docsource.Client.
func (c *Client) ListDatabases(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.data))
	for name := range c.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ListCollections implements docsource.Client.
func (c *Client) ListCollections(ctx context.Context, database string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	colls := c.data[database]
	names := make([]string, 0, len(colls))
	for name := range colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close implements docsource.Client.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeCalls++
	return c.closeErr
}

// Helper methods for testing

// Documents returns the seeded documents of a collection.
func (c *Client) Documents(database, collection string) []docsource.Document {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs := c.data[database][collection]
	out := make([]docsource.Document, len(docs))
	copy(out, docs)
	return out
}

// Clear removes all seeded data.
func (c *Client) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]map[string][]docsource.Document)
}

// PingCalls returns the number of Ping invocations.
func (c *Client) PingCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pingCalls
}

// FindCalls returns the number of Find invocations.
func (c *Client) FindCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findCalls
}

// CountCalls returns the number of Count invocations.
func (c *Client) CountCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.countCalls
}

// CloseCalls returns the number of Close invocations.
func (c *Client) CloseCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeCalls
}

func (c *Client) matchLocked(database, collection string, filter docsource.Filter) []docsource.Document {
	var matched []docsource.Document
	for _, doc := range c.data[database][collection] {
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func matches(doc docsource.Document, filter docsource.Filter) bool {
	for field, want := range filter {
		got, exists := doc[field]
		if !exists {
			return false
		}
		if ops, ok := want.(map[string]any); ok {
			if !matchesOps(got, ops) {
				return false
			}
			continue
		}
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}

func matchesOps(got any, ops map[string]any) bool {
	for op, bound := range ops {
		cmp, ok := compare(got, bound)
		if !ok {
			return false
		}
		switch op {
		case "$gt":
			if cmp <= 0 {
				return false
			}
		case "$gte":
			if cmp < 0 {
				return false
			}
		case "$lt":
			if cmp >= 0 {
				return false
			}
		case "$lte":
			if cmp > 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func compare(a, b any) (int, bool) {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return at.Compare(bt), true
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		default:
			return 0, true
		}
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

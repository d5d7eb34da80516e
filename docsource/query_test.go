/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docsource

import (
	"context"
	"testing"
)

// recordingClient captures the arguments of the last Find/Count call.
type recordingClient struct {
	lastDatabase   string
	lastCollection string
	lastFilter     Filter
	lastOpts       FindOptions
	docs           []Document
	count          int64
}

func (r *recordingClient) Ping(ctx context.Context) error { return nil }

func (r *recordingClient) Find(ctx context.Context, database, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	r.lastDatabase = database
	r.lastCollection = collection
	r.lastFilter = filter
	r.lastOpts = opts
	return r.docs, nil
}

func (r *recordingClient) Count(ctx context.Context, database, collection string, filter Filter) (int64, error) {
	r.lastDatabase = database
	r.lastCollection = collection
	r.lastFilter = filter
	return r.count, nil
}

func (r *recordingClient) ListDatabases(ctx context.Context) ([]string, error) { return nil, nil }

func (r *recordingClient) ListCollections(ctx context.Context, database string) ([]string, error) {
	return nil, nil
}

func (r *recordingClient) Close(ctx context.Context) error { return nil }

func TestQueryBuilderPassesArguments(t *testing.T) {
	client := &recordingClient{docs: []Document{{"name": "ada"}}}

	q := NewQuery(client, "analytics", "events").
		WithFilter(Filter{"active": true}).
		WithSkip(20).
		WithLimit(10)

	docs, err := q.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("Expected 1 document, got %d", len(docs))
	}

	if client.lastDatabase != "analytics" || client.lastCollection != "events" {
		t.Errorf("Expected analytics.events, got %s.%s", client.lastDatabase, client.lastCollection)
	}
	if client.lastOpts.Skip != 20 || client.lastOpts.Limit != 10 {
		t.Errorf("Expected skip=20 limit=10, got %+v", client.lastOpts)
	}
	if client.lastFilter["active"] != true {
		t.Errorf("Expected active filter, got %v", client.lastFilter)
	}
}

func TestQueryBuilderMergesFilters(t *testing.T) {
	client := &recordingClient{}

	q := NewQuery(client, "db", "coll").
		WithFilter(Filter{"active": true}).
		WithFilter(Filter{"region": "eu", "active": false})

	f := q.Filter()
	if f["active"] != false {
		t.Errorf("Later criteria should overwrite, got active=%v", f["active"])
	}
	if f["region"] != "eu" {
		t.Errorf("Expected region criterion kept, got %v", f["region"])
	}
}

func TestQueryBuilderCopyOnWrite(t *testing.T) {
	client := &recordingClient{}

	base := NewQuery(client, "db", "coll").WithFilter(Filter{"active": true})
	derivedA := base.WithFilter(Filter{"region": "eu"})
	derivedB := base.WithLimit(5)

	if _, ok := base.Filter()["region"]; ok {
		t.Error("Deriving a query must not mutate its parent filter")
	}
	if len(derivedA.Filter()) != 2 {
		t.Errorf("Expected derived filter with 2 criteria, got %v", derivedA.Filter())
	}
	if derivedB.limit != 5 || base.limit != 0 {
		t.Error("Deriving a query must not mutate its parent limit")
	}
}

func TestQueryCount(t *testing.T) {
	client := &recordingClient{count: 7}

	n, err := NewQuery(client, "db", "coll").WithFilter(Filter{"active": true}).Count(context.Background())
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 7 {
		t.Errorf("Expected count 7, got %d", n)
	}
}

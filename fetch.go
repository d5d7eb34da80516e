/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docframe

import (
	"context"
	"log/slog"

	"github.com/samber/mo"

	"github.com/suparena/docframe/config"
	"github.com/suparena/docframe/docsource"
	"github.com/suparena/docframe/errors"
	"github.com/suparena/docframe/quality"
	"github.com/suparena/docframe/retry"
)

// FetchFunc fetches documents for a fixed target, varying only the filter
// and limit between calls.
type FetchFunc func(ctx context.Context, filter docsource.Filter, limit int64) mo.Result[[]docsource.Document]

// SourceFunc produces the documents a pipeline starts from.
type SourceFunc func(ctx context.Context) mo.Result[[]docsource.Document]

// Fetcher fetches documents from a document source with validation and
// retry around connection setup. The zero configuration resolves
// connectors from the scheme registry and retries with the database
// policy.
type Fetcher struct {
	cfg       *config.Config
	policy    retry.Policy
	connector docsource.Connector
	logger    *slog.Logger
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithConfig sets the configuration used for defaults like batch size.
func WithConfig(cfg *config.Config) FetcherOption {
	return func(f *Fetcher) {
		if cfg != nil {
			f.cfg = cfg
		}
	}
}

// WithRetryPolicy replaces the connection retry policy.
func WithRetryPolicy(p retry.Policy) FetcherOption {
	return func(f *Fetcher) {
		f.policy = p
	}
}

// WithConnector pins the fetcher to one connector instead of resolving
// connectors from the scheme registry per URI.
func WithConnector(c docsource.Connector) FetcherOption {
	return func(f *Fetcher) {
		f.connector = c
	}
}

// WithLogger sets the logger for fetch and retry events.
func WithLogger(l *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFetcher creates a fetcher with library defaults applied.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		cfg:    config.Default(),
		policy: retry.DatabasePolicy(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.policy.Logger == nil {
		f.policy = f.policy.WithLogger(f.logger)
	}
	return f
}

// Fetch connects, runs a filtered and limited query, and eagerly
// materializes the result. The connection is validated before any network
// activity, established under the retry policy, and released on every
// path.
func (f *Fetcher) Fetch(ctx context.Context, uri, database, collection string, filter docsource.Filter, limit int64) mo.Result[[]docsource.Document] {
	return mo.TupleToResult(f.fetch(ctx, uri, database, collection, filter, limit))
}

func (f *Fetcher) fetch(ctx context.Context, uri, database, collection string, filter docsource.Filter, limit int64) ([]docsource.Document, error) {
	client, err := f.connect(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer f.release(ctx, client)

	docs, err := client.Find(ctx, database, collection, filter, docsource.FindOptions{Limit: limit})
	if err != nil {
		return nil, errors.NewQueryError(database, collection, "find", err)
	}

	f.logger.Debug("fetched documents",
		"database", database,
		"collection", collection,
		"filter", docsource.SanitizeFilter(filter),
		"count", len(docs))
	return docs, nil
}

// Count returns the number of documents matching the filter, with the
// same connection handling as Fetch.
func (f *Fetcher) Count(ctx context.Context, uri, database, collection string, filter docsource.Filter) mo.Result[int64] {
	return mo.TupleToResult(f.count(ctx, uri, database, collection, filter))
}

func (f *Fetcher) count(ctx context.Context, uri, database, collection string, filter docsource.Filter) (int64, error) {
	client, err := f.connect(ctx, uri)
	if err != nil {
		return 0, err
	}
	defer f.release(ctx, client)

	n, err := client.Count(ctx, database, collection, filter)
	if err != nil {
		return 0, errors.NewQueryError(database, collection, "count", err)
	}
	return n, nil
}

// FetchInBatches pages through the matching documents in batches of
// batchSize, which defaults to the configured chunk size when zero or
// negative. The count and paging loop retry as one unit, so a mid-loop
// failure restarts paging from the beginning rather than resuming where
// it stopped. Pages that come back empty are dropped. The connection is
// released exactly once, after the loop.
func (f *Fetcher) FetchInBatches(ctx context.Context, uri, database, collection string, batchSize int64, filter docsource.Filter) mo.Result[[][]docsource.Document] {
	return mo.TupleToResult(f.fetchInBatches(ctx, uri, database, collection, batchSize, filter))
}

func (f *Fetcher) fetchInBatches(ctx context.Context, uri, database, collection string, batchSize int64, filter docsource.Filter) ([][]docsource.Document, error) {
	if batchSize <= 0 {
		batchSize = int64(f.cfg.Frames.ChunkSize)
	}

	client, err := f.connect(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer f.release(ctx, client)

	batches, err := retry.Do(ctx, f.policy, func(ctx context.Context) ([][]docsource.Document, error) {
		total, err := client.Count(ctx, database, collection, filter)
		if err != nil {
			return nil, errors.NewQueryError(database, collection, "count", err)
		}

		var batches [][]docsource.Document
		for skip := int64(0); skip < total; skip += batchSize {
			page, err := client.Find(ctx, database, collection, filter, docsource.FindOptions{Skip: skip, Limit: batchSize})
			if err != nil {
				return nil, errors.NewQueryError(database, collection, "find", err)
			}
			if len(page) > 0 {
				batches = append(batches, page)
			}
		}
		return batches, nil
	})
	if err != nil {
		return nil, err
	}

	batchLogger := f.logger.With(
		"database", database,
		"collection", collection,
		"batch_size", batchSize)
	quality.LogBatchStats(batchLogger, batches, "fetch_in_batches")
	return batches, nil
}

// FetcherFor specializes the fetcher to one target, returning a closure
// over filter and limit.
func (f *Fetcher) FetcherFor(uri, database, collection string) FetchFunc {
	return func(ctx context.Context, filter docsource.Filter, limit int64) mo.Result[[]docsource.Document] {
		return f.Fetch(ctx, uri, database, collection, filter, limit)
	}
}

// Source fixes every fetch argument, returning the thunk a pipeline
// starts from.
func (f *Fetcher) Source(uri, database, collection string, filter docsource.Filter, limit int64) SourceFunc {
	return func(ctx context.Context) mo.Result[[]docsource.Document] {
		return f.Fetch(ctx, uri, database, collection, filter, limit)
	}
}

// connect validates the connection string, resolves a connector, and
// establishes a pinged connection under the retry policy. Clients that
// fail the ping are released before the next attempt.
func (f *Fetcher) connect(ctx context.Context, uri string) (docsource.Client, error) {
	if err := docsource.ValidateConnectionString(uri); err != nil {
		return nil, err
	}

	connector := f.connector
	if connector == nil {
		var err error
		connector, err = docsource.ConnectorFor(uri)
		if err != nil {
			return nil, err
		}
	}

	target := docsource.SanitizeConnectionString(uri)
	return retry.Do(ctx, f.policy, func(ctx context.Context) (docsource.Client, error) {
		client, err := connector.Connect(ctx, uri)
		if err != nil {
			return nil, errors.NewConnectionError(target, err)
		}
		if err := client.Ping(ctx); err != nil {
			f.release(ctx, client)
			return nil, errors.NewConnectionError(target, err)
		}
		f.logger.Debug("connected", "target", target)
		return client, nil
	})
}

// release closes a client without surfacing the error; teardown failures
// only make it into the debug log.
func (f *Fetcher) release(ctx context.Context, client docsource.Client) {
	if err := client.Close(ctx); err != nil {
		f.logger.Debug("client close failed", "error", err)
	}
}

// Fetch is the package-level convenience over a default Fetcher.
func Fetch(ctx context.Context, uri, database, collection string, filter docsource.Filter, limit int64) mo.Result[[]docsource.Document] {
	return NewFetcher().Fetch(ctx, uri, database, collection, filter, limit)
}

// Count is the package-level convenience over a default Fetcher.
func Count(ctx context.Context, uri, database, collection string, filter docsource.Filter) mo.Result[int64] {
	return NewFetcher().Count(ctx, uri, database, collection, filter)
}

// FetchInBatches is the package-level convenience over a default Fetcher.
func FetchInBatches(ctx context.Context, uri, database, collection string, batchSize int64, filter docsource.Filter) mo.Result[[][]docsource.Document] {
	return NewFetcher().FetchInBatches(ctx, uri, database, collection, batchSize, filter)
}

// FetcherFor is the package-level convenience over a default Fetcher.
func FetcherFor(uri, database, collection string) FetchFunc {
	return NewFetcher().FetcherFor(uri, database, collection)
}

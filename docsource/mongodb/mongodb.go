/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/suparena/docframe/config"
	"github.com/suparena/docframe/docsource"
)

func init() {
	docsource.RegisterConnector("mongodb", &Connector{})
	docsource.RegisterConnector("mongodb+srv", &Connector{})
}

// Connector opens MongoDB clients. A nil config falls back to library
// defaults, which is what the connector registered for the mongodb schemes
// uses; construct one with NewConnector to control timeouts and pooling.
type Connector struct {
	cfg *config.Config
}

// NewConnector creates a connector with explicit configuration.
func NewConnector(cfg *config.Config) *Connector {
	return &Connector{cfg: cfg}
}

// Connect implements docsource.Connector.
func (c *Connector) Connect(ctx context.Context, uri string) (docsource.Client, error) {
	cfg := c.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	m := cfg.Mongo

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(m.ConnectTimeout()).
		SetServerSelectionTimeout(m.ServerSelectionTimeout()).
		SetSocketTimeout(m.SocketTimeout()).
		SetMaxPoolSize(uint64(m.MaxPoolSize)).
		SetRetryWrites(m.RetryWrites)

	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open mongodb client: %w", err)
	}
	return &Client{cli: cli}, nil
}

// Client implements docsource.Client on the official MongoDB driver.
type Client struct {
	cli *mongo.Client
}

// Ping verifies the deployment answers on the primary.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.cli.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Find runs a filtered query and eagerly materializes the results.
func (c *Client) Find(ctx context.Context, database, collection string, filter docsource.Filter, opts docsource.FindOptions) ([]docsource.Document, error) {
	coll := c.cli.Database(database).Collection(collection)

	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := coll.Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return nil, fmt.Errorf("find on %s.%s failed: %w", database, collection, err)
	}

	var docs []docsource.Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("materializing results from %s.%s failed: %w", database, collection, err)
	}
	return docs, nil
}

// Count returns the number of documents matching the filter.
func (c *Client) Count(ctx context.Context, database, collection string, filter docsource.Filter) (int64, error) {
	coll := c.cli.Database(database).Collection(collection)

	n, err := coll.CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("count on %s.%s failed: %w", database, collection, err)
	}
	return n, nil
}

// ListDatabases returns the database names visible to the client.
func (c *Client) ListDatabases(ctx context.Context) ([]string, error) {
	names, err := c.cli.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing databases failed: %w", err)
	}
	return names, nil
}

// ListCollections returns the collection names inside a database.
func (c *Client) ListCollections(ctx context.Context, database string) ([]string, error) {
	names, err := c.cli.Database(database).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing collections in %s failed: %w", database, err)
	}
	return names, nil
}

// Close disconnects the underlying driver client.
func (c *Client) Close(ctx context.Context) error {
	if err := c.cli.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb disconnect failed: %w", err)
	}
	return nil
}

func toBSON(f docsource.Filter) bson.M {
	if f == nil {
		return bson.M{}
	}
	return bson.M(f)
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"sync"

	"github.com/suparena/docframe/docsource"
)

// Connector is a scripted in-memory implementation of docsource.Connector.
// It hands out a fixed client and can be made to fail permanently or for the
// first N connection attempts.
type Connector struct {
	mu     sync.Mutex
	client *Client

	connectErr      error
	connectFailures int
	scheduledErr    error

	connectCalls int
}

// NewConnector creates a connector serving the given client.
func NewConnector(client *Client) *Connector {
	return &Connector{client: client}
}

// WithConnectError makes every Connect return err.
func (c *Connector) WithConnectError(err error) *Connector {
	c.connectErr = err
	return c
}

// WithConnectFailures makes the first n Connect calls fail with err before
// the connector recovers.
func (c *Connector) WithConnectFailures(n int, err error) *Connector {
	c.connectFailures = n
	c.scheduledErr = err
	return c
}

// Connect implements docsource.Connector.
func (c *Connector) Connect(ctx context.Context, uri string) (docsource.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connectCalls++
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	if c.connectFailures > 0 {
		c.connectFailures--
		return nil, c.scheduledErr
	}
	return c.client, nil
}

// ConnectCalls returns the number of Connect invocations.
func (c *Connector) ConnectCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectCalls
}

// Client returns the underlying mock client.
func (c *Connector) Client() *Client {
	return c.client
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docsource

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// connectorRegistry maps connection string schemes (like "mongodb") to the
// Connector serving them. Driver packages register themselves from init().
var (
	connectorsMu sync.RWMutex
	connectors   = make(map[string]Connector)
)

// RegisterConnector registers a connector for a scheme. Registering the same
// scheme twice panics to prevent accidental overrides.
func RegisterConnector(scheme string, c Connector) {
	connectorsMu.Lock()
	defer connectorsMu.Unlock()

	if c == nil {
		panic("docsource: RegisterConnector called with nil connector")
	}
	if _, exists := connectors[scheme]; exists {
		panic(fmt.Sprintf("docsource: connector for scheme %q already registered", scheme))
	}
	connectors[scheme] = c
}

// ConnectorFor resolves the connector serving the scheme of a connection
// string. The scheme is everything before the "://" separator.
func ConnectorFor(uri string) (Connector, error) {
	scheme, _, found := strings.Cut(uri, "://")
	if !found {
		return nil, fmt.Errorf("connection string %q has no scheme", SanitizeConnectionString(uri))
	}

	connectorsMu.RLock()
	defer connectorsMu.RUnlock()

	c, exists := connectors[scheme]
	if !exists {
		return nil, fmt.Errorf("no connector registered for scheme %q (forgotten import?)", scheme)
	}
	return c, nil
}

// Connectors returns the registered schemes in sorted order.
func Connectors() []string {
	connectorsMu.RLock()
	defer connectorsMu.RUnlock()

	schemes := make([]string, 0, len(connectors))
	for s := range connectors {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

/*
Package docsource defines the boundary between docframe and document stores.

The two core types are deliberately loose: a Document is a schema-less
map[string]any record, and a Filter is an opaque predicate map handed to the
driver unmodified. The Client interface covers the operations the library
needs from a store (ping, filtered find with skip/limit, count, listing,
close), and a Connector opens Clients for a connection string.

Driver packages register themselves for the schemes they serve:

	import _ "github.com/suparena/docframe/docsource/mongodb"

	connector, err := docsource.ConnectorFor("mongodb://localhost:27017")

Connection strings are validated before use (accepted schemes, no dangerous
substrings) and sanitized before logging (credentials masked):

	if err := docsource.ValidateConnectionString(uri); err != nil { ... }
	logger.Info("connecting", "uri", docsource.SanitizeConnectionString(uri))

Implementations:
  - mongodb: MongoDB implementation on the official driver
  - mock: In-memory scripted implementation for testing
*/
package docsource

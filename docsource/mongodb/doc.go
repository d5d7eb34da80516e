// Package mongodb provides the MongoDB document source backed by the
// official driver. Importing the package registers connectors for the
// "mongodb" and "mongodb+srv" schemes, so resolving a client is usually
// just:
//
//	import _ "github.com/suparena/docframe/docsource/mongodb"
//
//	connector, err := docsource.ConnectorFor("mongodb://localhost:27017")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := connector.Connect(ctx, "mongodb://localhost:27017")
//
// The registered connector uses library defaults for timeouts and pool
// sizing. Use NewConnector with an explicit config to override them:
//
//	cfg := config.Default()
//	cfg.Mongo.MaxPoolSize = 50
//	client, err := mongodb.NewConnector(cfg).Connect(ctx, uri)
//
// Queries issued through the client are eagerly materialized into
// []docsource.Document slices; cursors never escape this package.
package mongodb

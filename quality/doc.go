// Package quality provides logging taps for observing data flowing through
// fetch and assembly chains without interrupting them.
//
// Every function returns its input unchanged so it can sit inline:
//
//	res := docframe.Fetch(ctx, uri, db, coll, nil, 0)
//	res = quality.LogResultFailure(logger, res, "user_fetch")
//
//	docs := quality.LogCompleteness(logger, docs, []string{"name", "email"}, "user_fetch")
//
// Completeness and null statistics log at info, dropping to warn when
// documents fall below 95% field completeness or a frame column carries
// more than 10% nulls.
package quality

/*
Package errors provides semantic error types for the docframe library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrConnection              = errors.New("connection failed")
	    ErrQuery                   = errors.New("query failed")
	    ErrConversion              = errors.New("conversion failed")
	    ErrValidation              = errors.New("validation failed")
	    ErrInvalidConnectionString = errors.New("invalid connection string")
	    ErrUnknownBackend          = errors.New("unknown table backend")
	    ErrBackendUnavailable      = errors.New("table backend not registered")
	    ErrPipelineConsumed        = errors.New("pipeline already executed")
	)

Usage:

	// Check error type
	res := docframe.Fetch(ctx, uri, "mydb", "users", nil, 0)
	if _, err := res.Get(); err != nil {
	    if errors.IsConnection(err) {
	        // Handle connection problems separately from query problems
	        return fmt.Errorf("database unreachable: %w", err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewConnectionError("mongodb://***@localhost:27017", cause)
	err := errors.NewQueryError("mydb", "users", "find", cause)
	err := errors.NewValidationError([]string{"age", "name"})

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors

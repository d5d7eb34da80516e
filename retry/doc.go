/*
Package retry executes operations under bounded exponential backoff schedules.

A Policy bundles the schedule (max attempts, base delay, cap, factor) with a
classifier deciding which errors are worth another attempt. Two presets cover
the common cases:

	retry.DatabasePolicy()  // 3 attempts, 1s..10s, database-class errors
	retry.NetworkPolicy()   // 5 attempts, 500ms..5s, transient errors

Operations run through the generic Do function, which returns the operation's
value or the last observed error once the schedule is exhausted:

	docs, err := retry.Do(ctx, retry.DatabasePolicy(), func(ctx context.Context) ([]byte, error) {
	    return readRemote(ctx)
	})

Wrap turns the same pairing into a reusable Result-producing callable for
pipeline composition:

	fetch := retry.Wrap(retry.NetworkPolicy(), readRemote)
	res := fetch(ctx) // mo.Result[[]byte]

Each failed non-final attempt logs a warning with the attempt number and the
upcoming delay; exhaustion logs an error. The sink is an injectable
*slog.Logger on the Policy. Non-retryable errors stop the schedule after a
single invocation and are surfaced unchanged.
*/
package retry

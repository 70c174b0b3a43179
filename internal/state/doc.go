// Package state provides the client-side cache of the problem catalog
// and the current user's progress records.
//
// # Overview
//
// Two stores live here. CatalogStore caches the shared problem catalog;
// AttemptStore caches one user's tracking records. Both hold snapshots
// behind an RWMutex and are the single owners of their records on the
// client: everything downstream (filtering, statistics, the UI) works
// on immutable snapshot copies.
//
// # Load Semantics
//
// Loads replace store contents wholesale - there is no incremental
// merge. A failed load never partially applies:
//
//	// Success: replace everything
//	store.LoadAll(ctx)
//	→ snapshot.Problems = <server order>
//	→ snapshot.LastError = nil, ConsecutiveFailures = 0
//
//	// Failure (network, decode, malformed record): keep old data
//	→ snapshot.Problems = <unchanged>
//	→ snapshot.LastError = err, ConsecutiveFailures++
//
// A catalog response containing a record with a missing required field
// is discarded in full and surfaced as a FetchError; the store keeps
// reflecting its last successful load.
//
// # Mutation Semantics
//
// Create/Update/Delete validate client-side invariants before any
// gateway call and only touch local state after the gateway confirms:
//
//   - ValidationError: A draft or patch violates an invariant; the
//     failing fields are enumerated and the gateway is never contacted.
//   - DuplicateError: A second tracking record for the same
//     (user, problem) pair; at most one record exists per key.
//   - ImmutableFieldError: A patch names a key field.
//   - NotFoundError: Update or delete on a key with no local record.
//   - ErrAuthRequired: LoadForUser without a session for that user.
//
// # Snapshots
//
// Snapshot() returns a defensive copy: slices are cloned and the error
// is wrapped, so callers can hold a snapshot across renders without
// racing the stores. Snapshots carry LastUpdated, LastError, and a
// consecutive-failure count with an IsOffline helper for the UI.
//
// # Concurrency Model
//
// Single writer per store (the coordinator's mutation path or the
// catalog poller), many readers (UI refresh loop). The RWMutex is held
// only during copy operations, never across network I/O.
package state

// Package app provides the orchestration layer for AlgoTrack.
//
// # Overview
//
// This package wires configuration, the API client, the identity
// manager, the stores, the mutation coordinator, and the UI into the
// complete application. It is the composition root; business logic
// lives in the domain packages.
//
// # Startup Sequence
//
//  1. Load configuration from ~/.config/algotrack/config.toml
//  2. Load user preferences (theme, page size)
//  3. Initialize the API client with the configured timeout
//  4. Build the session manager, both stores, and the coordinator
//  5. Launch the background catalog poller
//  6. Do an initial catalog load and session check (non-fatal)
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Polling Behavior
//
// Only the catalog is polled: it is shared state that other users
// mutate. The user's own progress records change only through the
// coordinator, which reconciles them after every successful write, so
// polling them would be redundant. Poll failures are logged and
// recorded in the store; the UI shows the last successful data with an
// offline indicator.
package app

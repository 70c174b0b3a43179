// Package api provides the HTTP client for the AlgoTrack tracker API.
//
// # Overview
//
// This package defines the typed gateway between the client-side state
// layer and the remote tracker service. It handles HTTP communication,
// JSON serialization, and type-safe representation of catalog problems,
// progress records, and session users.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the tracker API schema
//   - errors.go: Error classification (FetchError, TimeoutError)
//
// # Client Usage
//
// Create a client using the API base URL from configuration:
//
//	client, err := api.NewClient("http://127.0.0.1:5555/api", 5*time.Second)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	problems, err := client.FetchProblems(ctx)
//	attempts, err := client.FetchUserAttempts(ctx, userID)
//
// # API Endpoints
//
// The client supports the tracker's collection endpoints:
//
//   - GET /problems: Full catalog (bare array or paginated envelope)
//   - POST /problems: Create a catalog entry
//   - GET /users/{id}/problems: One user's progress records
//   - POST /user-problems: Create a progress record
//   - PATCH /users/{id}/problems/{pid}: Update a progress record
//   - DELETE /users/{id}/problems/{pid}: Remove a progress record (204)
//   - POST /login, /register, /logout and GET /authorized: Session management
//
// GET /problems answers in two shapes depending on server version: a
// bare JSON array, or an envelope {"problems": [...], "page": ...}.
// The client accepts both and discards pagination metadata.
//
// # Sessions
//
// Authentication is cookie-based. The client owns a cookie jar; a
// successful /login or /register stores the session cookie, and every
// subsequent request carries it implicitly. The client never decides
// whether a call is allowed - that gate lives in the tracker package.
//
// # Error Classification
//
// Failures are classified so callers can react without string matching:
//
//   - *FetchError: Unreachable server, 4xx/5xx status, undecodable payload.
//     Wraps ErrUnauthorized when the server answered 401/403.
//   - *TimeoutError: The request exceeded the configured bound, whether
//     via the http.Client timeout or context deadline.
//
// Errors propagate to the caller unchanged; no retries happen here.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying
// http.Client handles connection pooling and concurrent requests
// internally; the cookie jar is synchronized.
//
// # Testing Considerations
//
// The Gateway interface mirrors the client's method set so stores and
// the coordinator can be tested against hand-written fakes; httptest
// servers cover the client itself.
package api

// Package api provides HTTP client functionality for communicating with the
// Chatwoot application API. It handles authentication, request/response
// serialization, and the mapping of HTTP failures onto typed errors.
//
// # Client Creation
//
// [NewClient] takes a [Config] with the base URL, access token and account
// ID. The access token is sent via the api-access-token header on every
// request, and every path is scoped under /api/v1/accounts/{accountID}.
//
// # Request Behavior
//
// Each endpoint method issues exactly one HTTP request. There is no retry,
// no pagination traversal and no caching: a failure is classified and
// returned to the caller. Response payloads are treated as opaque JSON
// except for the single identifier a creation endpoint extracts.
//
// # Error Handling
//
// The package defines sentinel errors for common API error conditions:
//
//   - [ErrUnauthorized]: Invalid or expired access token (401).
//   - [ErrNotFound]: Resource does not exist (404).
//   - [ErrRateLimited]: Rate limit exceeded (429).
//
// Use errors.Is to check for specific error types:
//
//	if errors.Is(err, api.ErrNotFound) {
//	    // Handle missing resource
//	}
//
// Any other non-2xx status is returned as an [*APIError] carrying the
// status code and the raw response body. Transport failures are returned
// as [*NetworkError].
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api

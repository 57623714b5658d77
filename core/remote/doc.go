// Package remote talks to the JSONPlaceholder REST service.
//
// Client wraps the fiber HTTP client with a base URL, a per-request timeout and
// a token bucket rate limiter. Endpoint adapts one collection path to the
// reconcile.Endpoint contract: transport failures are returned as errors, every
// response that arrived is returned as a reconcile.Response.
package remote

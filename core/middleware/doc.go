// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a request id (RayID) for every incoming request, stored on the
//     context and echoed in the X-Ray-ID response header for tracing.
//
// The serve command registers rayid first, then request logging, then auth.
package middleware

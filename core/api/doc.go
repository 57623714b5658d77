// Package api exposes a repository over HTTP.
//
// CRUD mounts five routes for one resource on a fiber router:
//
//	GET    /            read list
//	GET    /:id         read
//	POST   /            create
//	PUT    /:id         update
//	DELETE /:id         delete
//
// Every response body is a Resource envelope {status, data, message}. A
// success answers 200, an error envelope answers 502 and an invalid id or body
// answers 400. When the operation does not finish within the request timeout
// the answer is 504.
//
// # Watching
//
// GET routes accept ?watch=true. The response is then newline delimited JSON,
// one envelope per emission, starting with loading and following every later
// cache change until the client disconnects. ?max=N ends the stream after N
// envelopes.
package api

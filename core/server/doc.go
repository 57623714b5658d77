// Package server holds the HTTP server configuration.
//
// The serve command reads the listen port, the optional API key, the graceful
// shutdown bound and whether to expose the Swagger UI from this Config.
//
// # Usage
//
//	addr, err := cfg.Server.Address()
//	app.Listen(addr)
package server

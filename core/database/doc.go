// Package database opens the local cache database and inspects its schema.
//
// It wraps GORM and picks the dialect from configuration: sqlite (the default,
// file backed or in memory) or MySQL.
//
// # Connect
//
// Connect opens the database, sizes the connection pool for the dialect and
// pings it within the configured timeout. A sqlite database is limited to a
// single open connection.
//
// # Schema Inspection
//
// Inspect compares models with the tables that back them and reports missing
// and unexpected columns. The schema command uses it to verify a cache file
// written by another build.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	reports, err := database.Inspect(db, &posts.Post{}, &users.User{})
package database

// Package app builds the application context shared by every repository.
//
// An App is created once at startup from the loaded configuration. It owns the
// cache database, the worker pools, the remote client and the settings store,
// and releases them in Close. Nothing in the module reaches these through
// package-level state; callers pass the App explicitly.
//
// # Usage
//
//	a, err := app.New(cfg, logger)
//	if err != nil {
//	    log.Fatalf("Failed to start: %v", err)
//	}
//	defer a.Close()
//
//	repo, err := posts.NewRepository(a)
package app

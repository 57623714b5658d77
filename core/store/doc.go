// Package store provides the local cache used by the reconciliation engine.
//
// A Store holds one entity type keyed by primary id. Reads are live: Query and
// QueryAll return a Live handle whose channel receives the current value on
// subscribe and a fresh value after every write to the same store.
//
// # Implementations
//
//   - GormStore: a gorm table (sqlite or mysql), upserting with ON CONFLICT.
//   - MemoryStore: a map guarded by a mutex, for ephemeral runs and tests.
//
// # Live queries
//
// All live queries of a store are registered in one hub. A write bumps the hub
// generation and marks every watcher dirty; each watcher then reloads on its own
// goroutine. Watchers of the same key at the same generation share one load
// through singleflight.
package store

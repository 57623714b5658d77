// Package reconcile provides a generic engine that keeps a local cache and a
// remote CRUD endpoint in step for one entity type.
//
// Every operation returns a Stream of Resource envelopes. The first emission
// is always Loading; the stream then reaches Success or Error.
//
// # Operations
//
//   - Create, Update and Delete make one remote call, write the cache only when
//     the call succeeded, emit one terminal state and complete.
//   - Read and ReadList probe the cache, optionally make one remote call, and
//     then keep mirroring the cache for as long as the stream is open.
//
// # Read state machine
//
// A read moves through AwaitingCache, then either Fresh (the cached value is
// good enough, no network) or AwaitingNetwork (cache values are mirrored as
// Loading while the remote read runs), and finally Mirroring (cache values are
// mirrored as Success, or as Error when the remote read failed). Closing the
// stream detaches every store subscription held by the read.
//
// # Scheduling
//
// Emissions happen on the main pool, cache writes on the disk pool and remote
// calls on the network pool. See package executor.
//
// # Identifier assignment
//
// When a successful create returns no body, the new id is read from the last
// path segment of the Location header. Only int32, int64 and string ids are
// supported; anything else, or a missing header, is reported to the fatal handler.
//
// # Usage Example
//
//	engine := reconcile.New[int64, *posts.Post]("posts", st, endpoint, exec, reconcile.Options[*posts.Post]{
//	    ShouldReadList: func(cached []*posts.Post) bool { return len(cached) == 0 },
//	    Logger:         logger,
//	})
//
//	stream := engine.ReadList(ctx)
//	defer stream.Close()
//	for res := range stream.C() {
//	    // render res.Status, res.Data, res.Message
//	}
package reconcile

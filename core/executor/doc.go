// Package executor provides the scheduling domains used by the reconciliation engine.
//
// Three pools are created at startup:
//   - Main: a single worker that owns all stream emission and subscription bookkeeping.
//   - DiskIO: a single worker that serializes local store writes.
//   - NetworkIO: a small fixed pool for remote calls.
//
// Every pool is an unbounded FIFO queue, so submitting work never blocks the caller.
package executor

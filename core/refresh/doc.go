// Package refresh keeps the local stores warm in the background.
//
// A Scheduler asks every registered Syncer to pull its remote collection into
// the local store, then sleeps for the refresh period stored in the settings
// document. The period is read again before each cycle, so a change made through
// the settings command applies from the next cycle on.
//
// A failed sync is retried with exponential backoff. Retries for one cycle never
// outlast the period itself.
package refresh

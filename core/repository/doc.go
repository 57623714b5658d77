// Package repository binds one local store and one remote endpoint into an
// engine for a single entity type.
//
// A Repository adds no behavior of its own. It fixes the list refetch policy
// and exposes Create, Read, ReadList, Update and Delete of the embedded engine,
// along with Sync for the background refresh.
//
// FromApp is the usual constructor: it migrates the entity table in the app
// database, points the engine at the remote collection and applies
// OnlyWhenEmpty, so a list is downloaded once and then served from cache.
package repository

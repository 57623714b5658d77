// Package settings persists the application settings document.
//
// # Document
//
// The document holds a single field, the background refresh period in minutes.
// It is encoded as a protobuf message whose field 1 is an int32, so the bytes
// stay readable by any reader of the app_settings.pb format.
//
// # Defaults
//
// A document that is absent, empty, unreadable or carries a non-positive period
// decodes to Default(). Reading settings never fails because of bad content,
// only because the backend itself failed.
//
// # Backends
//
// FileBackend writes to a local file through a temporary file and a rename.
// ObjectBackend stores the document as an object in a storage bucket.
package settings

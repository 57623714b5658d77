// Package albums serves the /albums collection.
package albums

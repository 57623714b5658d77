// Package utils converts loosely typed values, such as the cells of a raw SQL
// row scanned into a map, into Go types.
package utils

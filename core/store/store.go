package store

import "context"

// Keyed is implemented by every record held in a Store.
type Keyed[ID comparable] interface {
	GetID() ID
}

// Live is an observable query result.
//
// The current value is delivered on subscribe and again after every mutation
// of the owning store. Delivery conflates: a slow reader only sees the latest value.
// The channel is closed after Close.
type Live[V any] interface {
	C() <-chan V
	Close()
}

// Store is a keyed local cache for one entity type.
// Insert and Update are upserts by primary key.
type Store[ID comparable, T Keyed[ID]] interface {
	// Query watches a single record. The zero value of T is emitted while it is absent.
	Query(id ID) Live[T]
	// QueryAll watches every record ordered by id.
	QueryAll() Live[[]T]

	Insert(ctx context.Context, items ...T) error
	Update(ctx context.Context, items ...T) error
	Delete(ctx context.Context, items ...T) error
}

package content

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound is returned when no document carries the requested id.
	ErrNotFound = errors.New("document not found")
	// ErrNoFields is returned when an update supplies nothing to merge.
	ErrNoFields = errors.New("no fields to update")
)

// Store is the document store gateway used by the CRUD engine. The
// Mongo implementation is the production path; the memory twin backs
// unit tests.
type Store interface {
	// List returns every document in the collection ordered by the
	// "order" field ascending. Ties keep store iteration order.
	List(ctx context.Context, collection string) ([]bson.M, error)
	// Get returns the document with the given id or ErrNotFound.
	Get(ctx context.Context, collection, id string) (bson.M, error)
	Insert(ctx context.Context, collection string, doc bson.M) error
	// Update merges set into the document with the given id ($set
	// semantics). Returns ErrNotFound when no document matched.
	Update(ctx context.Context, collection, id string, set bson.M) error
	Delete(ctx context.Context, collection, id string) error
	// FindOne returns an arbitrary document from the collection
	// (singleton collections hold at most one) or ErrNotFound.
	FindOne(ctx context.Context, collection string) (bson.M, error)
}

// Package docstore provides a schemaless per-collection document store:
// named collections of id -> field-map records. Backends exist for
// Firestore, Postgres/SQLite (via gorm) and Redis.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document id does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Document is a stored record: its store-assigned id and its fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the document-store contract. Update performs a partial overwrite:
// fields present in the map replace stored values, absent fields are kept.
type Store interface {
	Add(ctx context.Context, collection string, fields map[string]any) (string, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	GetAll(ctx context.Context, collection string) ([]Document, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	// Query returns the documents whose named field equals value exactly.
	Query(ctx context.Context, collection, field string, value any) ([]Document, error)
}

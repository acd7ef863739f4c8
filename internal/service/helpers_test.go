package service

import (
	"context"
	"fmt"
	"time"

	"github.com/foodlog-app/backend/internal/blobstore"
	"github.com/foodlog-app/backend/internal/docstore"
)

// memDocs is an in-memory docstore.Store with deterministic ids and
// injectable write failures.
type memDocs struct {
	seq       int
	order     map[string][]string
	data      map[string]map[string]map[string]any
	addErr    error
	updateErr error
}

func newMemDocs() *memDocs {
	return &memDocs{
		order: make(map[string][]string),
		data:  make(map[string]map[string]map[string]any),
	}
}

func (m *memDocs) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if m.addErr != nil {
		return "", m.addErr
	}
	m.seq++
	id := fmt.Sprintf("doc-%d", m.seq)
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	m.data[collection][id] = copied
	m.order[collection] = append(m.order[collection], id)
	return id, nil
}

func (m *memDocs) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	fields, ok := m.data[collection][id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return docstore.Document{ID: id, Fields: fields}, nil
}

func (m *memDocs) GetAll(ctx context.Context, collection string) ([]docstore.Document, error) {
	docs := make([]docstore.Document, 0, len(m.order[collection]))
	for _, id := range m.order[collection] {
		if fields, ok := m.data[collection][id]; ok {
			docs = append(docs, docstore.Document{ID: id, Fields: fields})
		}
	}
	return docs, nil
}

func (m *memDocs) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	existing, ok := m.data[collection][id]
	if !ok {
		return docstore.ErrNotFound
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

func (m *memDocs) Delete(ctx context.Context, collection, id string) error {
	if _, ok := m.data[collection][id]; !ok {
		return docstore.ErrNotFound
	}
	delete(m.data[collection], id)
	return nil
}

func (m *memDocs) Query(ctx context.Context, collection, field string, value any) ([]docstore.Document, error) {
	all, _ := m.GetAll(ctx, collection)
	matched := make([]docstore.Document, 0, len(all))
	for _, doc := range all {
		if doc.Fields[field] == value {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

// failBlob wraps a MemoryStore with injectable upload and remove failures.
type failBlob struct {
	*blobstore.MemoryStore
	uploadErr error
	removeErr error
}

func (f *failBlob) Upload(ctx context.Context, objectName, contentType string, data []byte) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	return f.MemoryStore.Upload(ctx, objectName, contentType, data)
}

func (f *failBlob) Remove(ctx context.Context, objectName string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	return f.MemoryStore.Remove(ctx, objectName)
}

// fixedTime pins the clock so object names and timestamps are predictable.
var fixedTime = time.UnixMilli(1700000000000).UTC()

func fixedClock() time.Time { return fixedTime }

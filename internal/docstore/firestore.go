package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore backs the document store with Cloud Firestore. Firestore
// assigns document ids itself on Add.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore connects to Firestore for the given project.
func NewFirestoreStore(ctx context.Context, projectID string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *FirestoreStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	docs := make([]Document, len(snaps))
	for i, snap := range snaps {
		docs[i] = Document{ID: snap.Ref.ID, Fields: snap.Data()}
	}
	return docs, nil
}

func (s *FirestoreStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Query(ctx context.Context, collection, field string, value any) ([]Document, error) {
	snaps, err := s.client.Collection(collection).Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}
	docs := make([]Document, len(snaps))
	for i, snap := range snaps {
		docs[i] = Document{ID: snap.Ref.ID, Fields: snap.Data()}
	}
	return docs, nil
}

// Close releases the underlying client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore backs the document store with Redis: one hash per collection,
// field = document id, value = JSON-encoded fields.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already-connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func collectionKey(collection string) string {
	return "docs:" + collection
}

func (s *RedisStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	id := uuid.NewString()
	if err := s.client.HSet(ctx, collectionKey(collection), id, data).Err(); err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (Document, error) {
	data, err := s.client.HGet(ctx, collectionKey(collection), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return decodeDocument(collection, id, data)
}

func (s *RedisStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	raw, err := s.client.HGetAll(ctx, collectionKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	docs := make([]Document, 0, len(raw))
	for id, data := range raw {
		doc, err := decodeDocument(collection, id, []byte(data))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	sortByCreation(docs)
	return docs, nil
}

// sortByCreation orders documents by their created_at field, oldest first,
// with the id as tie-breaker. The hash itself has no order, so listings and
// page windows need this to stay stable between calls.
func sortByCreation(docs []Document) {
	sort.Slice(docs, func(i, j int) bool {
		ci, _ := docs[i].Fields["created_at"].(string)
		cj, _ := docs[j].Fields["created_at"].(string)
		if ci != cj {
			return ci < cj
		}
		return docs[i].ID < docs[j].ID
	})
}

func (s *RedisStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc.Fields[k] = v
	}
	data, err := json.Marshal(doc.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.client.HSet(ctx, collectionKey(collection), id, data).Err(); err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	removed, err := s.client.HDel(ctx, collectionKey(collection), id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RedisStore) Query(ctx context.Context, collection, field string, value any) ([]Document, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	var matched []Document
	for _, doc := range docs {
		if doc.Fields[field] == value {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func decodeDocument(collection, id string, data []byte) (Document, error) {
	fields := make(map[string]any)
	if err := json.Unmarshal(data, &fields); err != nil {
		return Document{}, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}
	return Document{ID: id, Fields: fields}, nil
}

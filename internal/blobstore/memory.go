package blobstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps objects in a map. It serves local development and tests;
// its public URLs carry the same bucket-path marker the S3 store produces.
type MemoryStore struct {
	mu      sync.Mutex
	bucket  string
	objects map[string][]byte
}

func NewMemoryStore(bucket string) *MemoryStore {
	return &MemoryStore{bucket: bucket, objects: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(ctx context.Context, objectName, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = data
	return nil
}

func (s *MemoryStore) PublicURL(objectName string) string {
	return fmt.Sprintf("https://storage.local/%s/%s", s.bucket, objectName)
}

func (s *MemoryStore) Remove(ctx context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[objectName]; !ok {
		return fmt.Errorf("object %s not found in %s", objectName, s.bucket)
	}
	delete(s.objects, objectName)
	return nil
}

func (s *MemoryStore) Bucket() string {
	return s.bucket
}

// Has reports whether an object is currently stored.
func (s *MemoryStore) Has(objectName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[objectName]
	return ok
}

// Len is the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

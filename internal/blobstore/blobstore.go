// Package blobstore wraps an object-storage bucket with the three operations
// the application needs: upload, public-URL resolution and removal.
package blobstore

import (
	"context"
	"strings"
)

// Store is a single bucket's client.
type Store interface {
	Upload(ctx context.Context, objectName, contentType string, data []byte) error
	PublicURL(objectName string) string
	Remove(ctx context.Context, objectName string) error
	Bucket() string
}

// ObjectName derives the object name from a public URL by locating the
// bucket-path marker and taking the remainder, stripped of any query
// component. ok is false when the URL does not contain the marker; callers
// then skip blob deletion entirely.
func ObjectName(rawURL, bucket string) (string, bool) {
	marker := "/" + bucket + "/"
	idx := strings.Index(rawURL, marker)
	if idx < 0 {
		return "", false
	}
	name := rawURL[idx+len(marker):]
	if q := strings.IndexByte(name, '?'); q >= 0 {
		name = name[:q]
	}
	if name == "" {
		return "", false
	}
	return name, true
}

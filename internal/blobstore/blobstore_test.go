package blobstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodlog-app/backend/internal/blobstore"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		bucket string
		want   string
		ok     bool
	}{
		{
			name:   "plain public URL",
			url:    "https://storage.local/food_bk/1715000000000-padkrapow.jpg",
			bucket: "food_bk",
			want:   "1715000000000-padkrapow.jpg",
			ok:     true,
		},
		{
			name:   "path-style S3 URL",
			url:    "https://s3.us-east-1.amazonaws.com/food_bk/1715000000000-padkrapow.jpg",
			bucket: "food_bk",
			want:   "1715000000000-padkrapow.jpg",
			ok:     true,
		},
		{
			name:   "query component stripped",
			url:    "https://storage.local/food_bk/photo.png?token=abc&x=1",
			bucket: "food_bk",
			want:   "photo.png",
			ok:     true,
		},
		{
			name:   "nested object name kept whole",
			url:    "https://storage.local/user_bk/avatars/me.png",
			bucket: "user_bk",
			want:   "avatars/me.png",
			ok:     true,
		},
		{
			name:   "marker absent",
			url:    "https://elsewhere.example.com/other_bucket/photo.png",
			bucket: "food_bk",
			ok:     false,
		},
		{
			name:   "marker with empty remainder",
			url:    "https://storage.local/food_bk/",
			bucket: "food_bk",
			ok:     false,
		},
		{
			name:   "not a URL at all",
			url:    "garbage",
			bucket: "food_bk",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := blobstore.ObjectName(tt.url, tt.bucket)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore("food_bk")

	err := store.Upload(ctx, "1-pic.png", "image/png", []byte("bytes"))
	assert.NoError(t, err)
	assert.True(t, store.Has("1-pic.png"))

	url := store.PublicURL("1-pic.png")
	name, ok := blobstore.ObjectName(url, store.Bucket())
	assert.True(t, ok)
	assert.Equal(t, "1-pic.png", name)

	assert.NoError(t, store.Remove(ctx, "1-pic.png"))
	assert.False(t, store.Has("1-pic.png"))
	assert.Error(t, store.Remove(ctx, "1-pic.png"))
}

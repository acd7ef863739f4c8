package docstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodlog-app/backend/internal/docstore"
)

func setupGormStore(t *testing.T) *docstore.GormStore {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := docstore.NewGormStore(db)
	require.NoError(t, err)
	return store
}

func TestGormStoreAddAndGet(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	id, err := store.Add(ctx, "foods", map[string]any{
		"foodname": "Pad Krapow",
		"meal":     "Lunch",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := store.Get(ctx, "foods", id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "Pad Krapow", doc.Fields["foodname"])
	assert.Equal(t, "Lunch", doc.Fields["meal"])
}

func TestGormStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	_, err := store.Get(ctx, "foods", "no-such-id")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestGormStoreCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	id, err := store.Add(ctx, "foods", map[string]any{"foodname": "Sushi"})
	require.NoError(t, err)

	_, err = store.Get(ctx, "users", id)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestGormStoreUpdateIsPartial(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	id, err := store.Add(ctx, "foods", map[string]any{
		"foodname":   "Sushi",
		"meal":       "Dinner",
		"created_at": "2024-05-01T00:00:00Z",
	})
	require.NoError(t, err)

	err = store.Update(ctx, "foods", id, map[string]any{"meal": "Lunch"})
	require.NoError(t, err)

	doc, err := store.Get(ctx, "foods", id)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", doc.Fields["meal"])
	assert.Equal(t, "Sushi", doc.Fields["foodname"])
	assert.Equal(t, "2024-05-01T00:00:00Z", doc.Fields["created_at"])
}

func TestGormStoreUpdateMissing(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	err := store.Update(ctx, "foods", "no-such-id", map[string]any{"meal": "Lunch"})
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestGormStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	id, err := store.Add(ctx, "foods", map[string]any{"foodname": "Sushi"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "foods", id))

	_, err = store.Get(ctx, "foods", id)
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "foods", id), docstore.ErrNotFound)
}

func TestGormStoreGetAll(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	for _, name := range []string{"Pad Krapow", "Sushi", "Omelette"} {
		_, err := store.Add(ctx, "foods", map[string]any{"foodname": name})
		require.NoError(t, err)
	}

	docs, err := store.GetAll(ctx, "foods")
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestGormStoreQuery(t *testing.T) {
	ctx := context.Background()
	store := setupGormStore(t)

	_, err := store.Add(ctx, "users", map[string]any{"email": "a@b.com", "password": "y"})
	require.NoError(t, err)
	_, err = store.Add(ctx, "users", map[string]any{"email": "c@d.com", "password": "z"})
	require.NoError(t, err)

	docs, err := store.Query(ctx, "users", "email", "a@b.com")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "y", docs[0].Fields["password"])

	docs, err = store.Query(ctx, "users", "email", "nobody@nowhere.com")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

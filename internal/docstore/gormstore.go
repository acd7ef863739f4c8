package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// documentRow is the single table the gorm backend keeps: one row per
// document, fields serialized as JSON.
type documentRow struct {
	Collection string    `gorm:"primaryKey;size:64"`
	ID         string    `gorm:"primaryKey;size:64"`
	Data       []byte    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

// GormStore backs the document store with a relational database through
// gorm: Postgres in deployment, SQLite in tests.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the documents table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	row := documentRow{Collection: collection, ID: uuid.NewString(), Data: data}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return row.ID, nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to get %s/%s: %w", collection, id, err)
	}
	return rowToDocument(row)
}

func (s *GormStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := rowToDocument(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *GormStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
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
	err = s.db.WithContext(ctx).Model(&documentRow{}).
		Where("collection = ? AND id = ?", collection, id).
		Update("data", data).Error
	if err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	result := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&documentRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Query scans the collection and matches the field in memory; equality
// lookups here are rare (login by email) and the payload is opaque JSON.
func (s *GormStore) Query(ctx context.Context, collection, field string, value any) ([]Document, error) {
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

func rowToDocument(row documentRow) (Document, error) {
	fields := make(map[string]any)
	if err := json.Unmarshal(row.Data, &fields); err != nil {
		return Document{}, fmt.Errorf("failed to decode %s/%s: %w", row.Collection, row.ID, err)
	}
	return Document{ID: row.ID, Fields: fields}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/foodlog-app/backend/internal/blobstore"
	"github.com/foodlog-app/backend/internal/docstore"
	"github.com/foodlog-app/backend/internal/models"
)

// ErrUploadFailed marks a failed image upload on the food path. The write
// never reaches the document store; the HTTP layer reports the blob store as
// the failing upstream.
var ErrUploadFailed = errors.New("image upload failed")

// FoodService keeps food entries consistent across the document store and
// the image bucket: uploads happen before the document write that references
// them, and deletes remove the image best-effort before the document.
type FoodService struct {
	docs   docstore.Store
	images blobstore.Store
	now    func() time.Time
}

// NewFoodService creates a FoodService over the two stores.
func NewFoodService(docs docstore.Store, images blobstore.Store) *FoodService {
	return &FoodService{docs: docs, images: images, now: time.Now}
}

// FoodInput is the writable portion of a food entry.
type FoodInput struct {
	FoodName string
	Meal     models.Meal
	Date     string
}

// Create uploads the image first, if any, then inserts the document
// referencing the resulting URL. An upload failure aborts before any
// document write. A document-write failure leaves the uploaded object
// orphaned; it is logged, never rolled back.
func (s *FoodService) Create(ctx context.Context, in FoodInput, img *ImageUpload) (models.Food, error) {
	imageURL := ""
	if img != nil {
		name := s.objectName(img.Filename)
		if err := s.images.Upload(ctx, name, img.ContentType, img.Data); err != nil {
			return models.Food{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		imageURL = s.images.PublicURL(name)
	}

	now := s.now().UTC().Format(time.RFC3339)
	fields := map[string]any{
		"foodname":       in.FoodName,
		"meal":           string(in.Meal),
		"fooddate_at":    in.Date,
		"food_image_url": imageURL,
		"created_at":     now,
		"updated_at":     now,
	}
	id, err := s.docs.Add(ctx, FoodsCollection, fields)
	if err != nil {
		if imageURL != "" {
			log.Printf("[FoodService] document write failed, leaving orphaned object %s", imageURL)
		}
		return models.Food{}, fmt.Errorf("failed to create food entry: %w", err)
	}
	return models.FoodFromDocument(docstore.Document{ID: id, Fields: fields}), nil
}

// Update overwrites the content fields of an existing entry. Without a new
// image the stored URL is carried over untouched. The updated_at timestamp
// is not refreshed; edits in the system this replaces never touched it and
// that behavior is kept.
func (s *FoodService) Update(ctx context.Context, id string, in FoodInput, img *ImageUpload) (models.Food, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.Food{}, err
	}

	imageURL := existing.ImageURL
	if img != nil {
		name := s.objectName(img.Filename)
		if err := s.images.Upload(ctx, name, img.ContentType, img.Data); err != nil {
			return models.Food{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		imageURL = s.images.PublicURL(name)
	}

	fields := map[string]any{
		"foodname":       in.FoodName,
		"meal":           string(in.Meal),
		"fooddate_at":    in.Date,
		"food_image_url": imageURL,
	}
	if err := s.docs.Update(ctx, FoodsCollection, id, fields); err != nil {
		if img != nil {
			log.Printf("[FoodService] document update failed, leaving orphaned object %s", imageURL)
		}
		return models.Food{}, fmt.Errorf("failed to update food entry: %w", err)
	}

	existing.FoodName = in.FoodName
	existing.Meal = in.Meal
	existing.Date = in.Date
	existing.ImageURL = imageURL
	return existing, nil
}

// Get fetches one entry by id.
func (s *FoodService) Get(ctx context.Context, id string) (models.Food, error) {
	doc, err := s.docs.Get(ctx, FoodsCollection, id)
	if err != nil {
		return models.Food{}, err
	}
	return models.FoodFromDocument(doc), nil
}

// Delete removes an entry and, opportunistically, its image. The image
// removal never blocks the document delete: an unparseable URL skips it
// silently and a removal failure is logged and swallowed. The document
// delete is the operation's outcome.
func (s *FoodService) Delete(ctx context.Context, id string) error {
	food, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if food.ImageURL != "" {
		if name, ok := blobstore.ObjectName(food.ImageURL, s.images.Bucket()); ok {
			if err := s.images.Remove(ctx, name); err != nil {
				log.Printf("[FoodService] failed to remove image %s: %v", name, err)
			}
		}
	}

	if err := s.docs.Delete(ctx, FoodsCollection, id); err != nil {
		return fmt.Errorf("failed to delete food entry: %w", err)
	}
	return nil
}

// List fetches the whole collection in one call and computes the requested
// page as a pure function of (collection, term, page).
func (s *FoodService) List(ctx context.Context, term string, page int) (FoodPage, error) {
	docs, err := s.docs.GetAll(ctx, FoodsCollection)
	if err != nil {
		return FoodPage{}, fmt.Errorf("failed to list food entries: %w", err)
	}
	foods := make([]models.Food, len(docs))
	for i, doc := range docs {
		foods[i] = models.FoodFromDocument(doc)
	}
	return PaginateFoods(FilterFoods(foods, term), page), nil
}

// objectName builds a collision-resistant object name from the upload time
// and the original filename. Collisions are accepted as negligible.
func (s *FoodService) objectName(filename string) string {
	return fmt.Sprintf("%d-%s", s.now().UnixMilli(), filename)
}

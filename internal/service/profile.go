package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/foodlog-app/backend/internal/blobstore"
	"github.com/foodlog-app/backend/internal/docstore"
	"github.com/foodlog-app/backend/internal/models"
)

// ProfileService reads and updates user accounts, including the avatar swap:
// old image removed best-effort, new image uploaded, document updated once.
type ProfileService struct {
	docs     docstore.Store
	avatars  blobstore.Store
	verifier CredentialVerifier
	now      func() time.Time
}

// NewProfileService creates a ProfileService over the user stores.
func NewProfileService(docs docstore.Store, avatars blobstore.Store, verifier CredentialVerifier) *ProfileService {
	return &ProfileService{docs: docs, avatars: avatars, verifier: verifier, now: time.Now}
}

// Get fetches the fresh account document by id.
func (s *ProfileService) Get(ctx context.Context, id string) (models.User, error) {
	doc, err := s.docs.Get(ctx, UsersCollection, id)
	if err != nil {
		return models.User{}, err
	}
	return models.UserFromDocument(doc), nil
}

// ProfileInput is the editable portion of an account. An empty Password
// leaves the stored credential unchanged.
type ProfileInput struct {
	FullName string
	Email    string
	Gender   string
	Password string
}

// Update applies the form in a single document write. When a new avatar is
// supplied, the old object is removed best-effort first (a failure there is
// logged and the update continues), then the new one is uploaded; an upload
// failure aborts the whole operation before the document is touched.
func (s *ProfileService) Update(ctx context.Context, id string, in ProfileInput, avatar *ImageUpload) (models.User, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	imageURL := current.ImageURL
	if avatar != nil {
		if current.ImageURL != "" {
			if name, ok := blobstore.ObjectName(current.ImageURL, s.avatars.Bucket()); ok {
				if err := s.avatars.Remove(ctx, name); err != nil {
					log.Printf("[ProfileService] failed to remove old avatar %s: %v", name, err)
				}
			}
		}
		name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), avatar.Filename)
		if err := s.avatars.Upload(ctx, name, avatar.ContentType, avatar.Data); err != nil {
			return models.User{}, fmt.Errorf("failed to upload avatar: %w", err)
		}
		imageURL = s.avatars.PublicURL(name)
	}

	fields := map[string]any{
		"email":          in.Email,
		"fullname":       in.FullName,
		"gender":         in.Gender,
		"user_image_url": imageURL,
	}
	if in.Password != "" {
		stored, err := s.verifier.Hash(in.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to prepare password: %w", err)
		}
		fields["password"] = stored
	}
	if err := s.docs.Update(ctx, UsersCollection, id, fields); err != nil {
		return models.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	current.FullName = in.FullName
	current.Email = in.Email
	current.Gender = in.Gender
	current.ImageURL = imageURL
	return current, nil
}

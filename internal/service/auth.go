package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/foodlog-app/backend/internal/blobstore"
	"github.com/foodlog-app/backend/internal/docstore"
	"github.com/foodlog-app/backend/internal/models"
)

// ErrInvalidCredentials is returned for an unknown email or a failed
// password comparison; the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier isolates the password scheme so the storage format can
// change without touching login or registration call sites.
type CredentialVerifier interface {
	// Hash prepares a password for storage.
	Hash(password string) (string, error)
	// Compare checks a supplied password against the stored value.
	Compare(stored, supplied string) error
}

// PlaintextVerifier stores and compares passwords as-is. This mirrors the
// system this backend replaces and is the default; it is a known weakness
// kept deliberately rather than silently upgraded.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) { return password, nil }

func (PlaintextVerifier) Compare(stored, supplied string) error {
	if stored != supplied {
		return ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier is the hashed alternative, selectable by configuration.
// Accounts registered under one verifier are not readable by the other.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptVerifier) Compare(stored, supplied string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// AuthService handles registration and login against the users collection.
type AuthService struct {
	docs     docstore.Store
	avatars  blobstore.Store
	verifier CredentialVerifier
	now      func() time.Time
}

// NewAuthService creates an AuthService. avatars is the user-image bucket.
func NewAuthService(docs docstore.Store, avatars blobstore.Store, verifier CredentialVerifier) *AuthService {
	return &AuthService{docs: docs, avatars: avatars, verifier: verifier, now: time.Now}
}

// RegisterInput is the registration form.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Gender   string
}

// Register creates an account. An avatar upload failure is non-fatal: the
// account is created without an image. This differs from the food path on
// purpose; it is what the replaced system did.
func (s *AuthService) Register(ctx context.Context, in RegisterInput, avatar *ImageUpload) (models.User, error) {
	imageURL := ""
	if avatar != nil {
		name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), avatar.Filename)
		if err := s.avatars.Upload(ctx, name, avatar.ContentType, avatar.Data); err != nil {
			log.Printf("[AuthService] avatar upload failed, registering without image: %v", err)
		} else {
			imageURL = s.avatars.PublicURL(name)
		}
	}

	stored, err := s.verifier.Hash(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to prepare password: %w", err)
	}

	now := s.now().UTC().Format(time.RFC3339)
	fields := map[string]any{
		"fullname":       in.FullName,
		"email":          in.Email,
		"password":       stored,
		"gender":         in.Gender,
		"user_image_url": imageURL,
		"created_at":     now,
		"updated_at":     now,
	}
	id, err := s.docs.Add(ctx, UsersCollection, fields)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to register user: %w", err)
	}
	return models.UserFromDocument(docstore.Document{ID: id, Fields: fields}), nil
}

// Login looks the account up by email and compares the password through the
// verifier. Any failure along the way is ErrInvalidCredentials; nothing is
// written on failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	docs, err := s.docs.Query(ctx, UsersCollection, "email", email)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if len(docs) == 0 {
		return models.User{}, ErrInvalidCredentials
	}

	user := models.UserFromDocument(docs[0])
	if err := s.verifier.Compare(user.Password, password); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodlog-app/backend/internal/blobstore"
)

func newAuthService(docs *memDocs, avatars blobstore.Store) *AuthService {
	svc := NewAuthService(docs, avatars, PlaintextVerifier{})
	svc.now = fixedClock
	return svc
}

func sampleRegistration() RegisterInput {
	return RegisterInput{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "secret", Gender: "female"}
}

func TestRegisterStoresPlaintextCredential(t *testing.T) {
	docs := newMemDocs()
	svc := newAuthService(docs, blobstore.NewMemoryStore("user_bk"))

	user, err := svc.Register(context.Background(), sampleRegistration(), nil)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", user.ID)
	assert.Empty(t, user.ImageURL)

	doc, err := docs.Get(context.Background(), UsersCollection, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", doc.Fields["password"], "plaintext scheme stores the password as-is")
}

func TestRegisterWithAvatar(t *testing.T) {
	docs := newMemDocs()
	avatars := blobstore.NewMemoryStore("user_bk")
	svc := newAuthService(docs, avatars)

	img := &ImageUpload{Filename: "me.png", ContentType: "image/png", Data: []byte("png")}
	user, err := svc.Register(context.Background(), sampleRegistration(), img)
	require.NoError(t, err)

	assert.Equal(t, "https://storage.local/user_bk/1700000000000-me.png", user.ImageURL)
	assert.True(t, avatars.Has("1700000000000-me.png"))
}

func TestRegisterAvatarFailureIsNonFatal(t *testing.T) {
	docs := newMemDocs()
	avatars := &failBlob{MemoryStore: blobstore.NewMemoryStore("user_bk"), uploadErr: errors.New("bucket down")}
	svc := newAuthService(docs, avatars)

	img := &ImageUpload{Filename: "me.png", ContentType: "image/png", Data: []byte("png")}
	user, err := svc.Register(context.Background(), sampleRegistration(), img)
	require.NoError(t, err, "a failed avatar upload must not block account creation")
	assert.Empty(t, user.ImageURL)

	_, err = docs.Get(context.Background(), UsersCollection, user.ID)
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	docs := newMemDocs()
	svc := newAuthService(docs, blobstore.NewMemoryStore("user_bk"))

	registered, err := svc.Register(context.Background(), sampleRegistration(), nil)
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "Ada Lovelace", user.FullName)
}

func TestLoginWrongPassword(t *testing.T) {
	docs := newMemDocs()
	svc := newAuthService(docs, blobstore.NewMemoryStore("user_bk"))

	_, err := svc.Register(context.Background(), sampleRegistration(), nil)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newMemDocs(), blobstore.NewMemoryStore("user_bk"))
	_, err := svc.Login(context.Background(), "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}

	stored, err := v.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored)

	assert.NoError(t, v.Compare(stored, "secret"))
	assert.ErrorIs(t, v.Compare(stored, "wrong"), ErrInvalidCredentials)
}

func TestVerifiersAreNotInterchangeable(t *testing.T) {
	stored, err := BcryptVerifier{}.Hash("secret")
	require.NoError(t, err)
	assert.ErrorIs(t, PlaintextVerifier{}.Compare(stored, "secret"), ErrInvalidCredentials)
}

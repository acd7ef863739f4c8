package models

import "github.com/foodlog-app/backend/internal/docstore"

// User is a registered account. The password field holds whatever the
// configured credential verifier stored (plaintext by default) and is never
// serialized out of the API.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	Password  string `json:"-"`
	ImageURL  string `json:"user_image_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UserFromDocument rebuilds a User from its stored field map.
func UserFromDocument(d docstore.Document) User {
	return User{
		ID:        d.ID,
		FullName:  str(d.Fields, "fullname"),
		Email:     str(d.Fields, "email"),
		Gender:    str(d.Fields, "gender"),
		Password:  str(d.Fields, "password"),
		ImageURL:  str(d.Fields, "user_image_url"),
		CreatedAt: str(d.Fields, "created_at"),
		UpdatedAt: str(d.Fields, "updated_at"),
	}
}

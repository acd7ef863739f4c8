package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodlog-app/backend/internal/service"
)

// MaxImageSize is the upload ceiling checked at the boundary, before any
// store call. There is no deeper re-validation behind it.
const MaxImageSize = 5 << 20

var (
	errNotAnImage  = errors.New("please select a valid image file")
	errImageTooBig = errors.New("image size should be less than 5MB")
)

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// imageFromForm pulls an optional image file out of a multipart form.
// A missing file is valid (the record simply has no photo); a non-image
// content type or an oversized file aborts before any upload is attempted.
func imageFromForm(c *gin.Context, field string) (*service.ImageUpload, error) {
	file, header, err := c.Request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errNotAnImage
	}
	if header.Size > MaxImageSize {
		return nil, errImageTooBig
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxImageSize {
		return nil, errImageTooBig
	}

	return &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

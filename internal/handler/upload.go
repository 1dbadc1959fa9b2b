package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasfirul8269/frooxi-backend/internal/service"
)

const maxImageSize = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// imageFromForm extracts an optional image file from a multipart form.
// Returns (nil, nil, nil) when the field is absent. The caller must close
// the returned file.
func imageFromForm(c *gin.Context, field string) (*service.ImageUpload, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("invalid file upload: %w", err)
	}

	if header.Size > maxImageSize {
		return nil, nil, fmt.Errorf("image exceeds the %d MB limit", maxImageSize>>20)
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, nil, fmt.Errorf("unsupported image type %q", contentType)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open upload: %w", err)
	}

	return &service.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Body:        file,
	}, file, nil
}

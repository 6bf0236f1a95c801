package domain

import (
	"fmt"
	"time"
)

// WeddingPhoto references an externally hosted image. Nothing prevents
// several photos from being flagged as main at once; listings put main
// photos first and GetMain picks an arbitrary one.
type WeddingPhoto struct {
	ID           int64     `json:"id"`
	URL          string    `json:"url"`
	AltText      *string   `json:"alt_text"`
	IsMainPhoto  bool      `json:"is_main_photo"`
	GalleryOrder *int      `json:"gallery_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateWeddingPhotoRequest struct {
	URL          string  `json:"url"`
	AltText      *string `json:"alt_text"`
	IsMainPhoto  bool    `json:"is_main_photo"`
	GalleryOrder *int    `json:"gallery_order"`
}

func (r *CreateWeddingPhotoRequest) Validate() error {
	if r.URL == "" {
		return fmt.Errorf("url is required")
	}
	if !isValidURL(r.URL) {
		return fmt.Errorf("invalid url")
	}
	return nil
}

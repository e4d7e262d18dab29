package model

import "time"

// Gallery item types.
const (
	ImageTypeImage = "image"
	ImageTypeVideo = "video"
)

// GalleryImage represents one item of the public gallery. Order determines
// display sequence and need not be contiguous.
type GalleryImage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	ImageType   string    `json:"imageType"`
	FileSize    *int64    `json:"fileSize,omitempty"`
	Width       *int64    `json:"width,omitempty"`
	Height      *int64    `json:"height,omitempty"`
	Order       int64     `json:"order"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks the fields required to store a gallery item.
func (g *GalleryImage) Validate() map[string]string {
	errs := make(map[string]string)
	if g.ImageURL == "" {
		errs["imageUrl"] = "Image URL is required"
	}
	if g.ImageType != "" && g.ImageType != ImageTypeImage && g.ImageType != ImageTypeVideo {
		errs["imageType"] = "Image type must be 'image' or 'video'"
	}
	return errs
}

package fallback

import "github.com/ruslanamed/clinic-go/internal/model"

var galleryList = []model.GalleryImage{
	{
		ID:          1,
		Title:       "Медичне обладнання",
		Description: "Сучасне обладнання для діагностики та лікування",
		ImageURL:    "https://images.unsplash.com/photo-1551076805-e1869033e561?w=800&h=600&fit=crop",
		ImageType:   model.ImageTypeImage,
		Order:       1,
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
	{
		ID:          2,
		Title:       "Хірургічний кабінет",
		Description: "Сучасний хірургічний кабінет",
		ImageURL:    "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=800&h=600&fit=crop",
		ImageType:   model.ImageTypeImage,
		Order:       2,
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
	{
		ID:          3,
		Title:       "Лабораторія",
		Description: "Сучасна лабораторія для аналізів",
		ImageURL:    "https://images.unsplash.com/photo-1532187863486-abf9dbad1b69?w=800&h=600&fit=crop",
		ImageType:   model.ImageTypeImage,
		Order:       3,
		Published:   true,
		CreatedAt:   seedTime,
		UpdatedAt:   seedTime,
	},
}

// galleryByID mirrors articleByID: only the first record is reachable by id.
var galleryByID = galleryList[:1]

// Gallery returns the fallback gallery list, already in display order.
func Gallery() []model.GalleryImage {
	out := make([]model.GalleryImage, len(galleryList))
	copy(out, galleryList)
	return out
}

// GalleryImageByID looks up one image in the by-id fallback set.
func GalleryImageByID(id int64) (model.GalleryImage, bool) {
	for _, g := range galleryByID {
		if g.ID == id {
			return g, true
		}
	}
	return model.GalleryImage{}, false
}

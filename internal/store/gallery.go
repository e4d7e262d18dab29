package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ruslanamed/clinic-go/internal/model"
)

const galleryColumns = `id, COALESCE(title, ''), COALESCE(description, ''), "imageUrl", "imageType", "fileSize", width, height, "order", published, "createdAt", "updatedAt"`

func scanGalleryImage(row pgx.Row) (model.GalleryImage, error) {
	var g model.GalleryImage
	err := row.Scan(&g.ID, &g.Title, &g.Description, &g.ImageURL, &g.ImageType,
		&g.FileSize, &g.Width, &g.Height, &g.Order, &g.Published, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return model.GalleryImage{}, err
	}
	return g, nil
}

// ListPublishedGallery returns published gallery items in display order.
func (q *Queries) ListPublishedGallery(ctx context.Context) ([]model.GalleryImage, error) {
	rows, err := q.db.pool.Query(ctx,
		`SELECT `+galleryColumns+` FROM "GalleryImage" WHERE published = true ORDER BY "order" ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, g)
	}
	return images, rows.Err()
}

// GetGalleryImageByID returns one published gallery item.
func (q *Queries) GetGalleryImageByID(ctx context.Context, id int64) (model.GalleryImage, error) {
	row := q.db.pool.QueryRow(ctx,
		`SELECT `+galleryColumns+` FROM "GalleryImage" WHERE id = $1 AND published = true`, id)
	return scanGalleryImage(row)
}

// CreateGalleryImage inserts a gallery item and returns the stored row.
func (q *Queries) CreateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	now := time.Now()
	row := q.db.pool.QueryRow(ctx,
		`INSERT INTO "GalleryImage" (title, description, "imageUrl", "imageType", "fileSize", width, height, "order", published, "createdAt", "updatedAt")
		 VALUES (NULLIF($1, ''), NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+galleryColumns,
		g.Title, g.Description, g.ImageURL, g.ImageType, g.FileSize, g.Width, g.Height, g.Order, g.Published, now, now)
	return scanGalleryImage(row)
}

// UpdateGalleryImage rewrites a gallery row and returns the stored result.
func (q *Queries) UpdateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	row := q.db.pool.QueryRow(ctx,
		`UPDATE "GalleryImage"
		 SET title = NULLIF($1, ''), description = NULLIF($2, ''), "imageUrl" = $3, "imageType" = $4,
		     "fileSize" = $5, width = $6, height = $7, "order" = $8, published = $9, "updatedAt" = $10
		 WHERE id = $11
		 RETURNING `+galleryColumns,
		g.Title, g.Description, g.ImageURL, g.ImageType, g.FileSize, g.Width, g.Height, g.Order, g.Published, time.Now(), g.ID)
	return scanGalleryImage(row)
}

// DeleteGalleryImage removes a gallery item.
func (q *Queries) DeleteGalleryImage(ctx context.Context, id int64) error {
	tag, err := q.db.pool.Exec(ctx, `DELETE FROM "GalleryImage" WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

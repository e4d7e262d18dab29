package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ruslanamed/clinic-go/internal/model"
)

const articleColumns = `id, title, excerpt, category, COALESCE(image, ''), content, date, "readTime", published, "createdAt", "updatedAt"`

func scanArticle(row pgx.Row) (model.Article, error) {
	var a model.Article
	var content []byte
	err := row.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Category, &a.Image,
		&content, &a.Date, &a.ReadTime, &a.Published, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Article{}, err
	}
	if err := json.Unmarshal(content, &a.Content); err != nil {
		return model.Article{}, fmt.Errorf("decoding article content: %w", err)
	}
	return a, nil
}

// ListPublishedArticles returns published articles, newest first.
func (q *Queries) ListPublishedArticles(ctx context.Context) ([]model.Article, error) {
	rows, err := q.db.pool.Query(ctx,
		`SELECT `+articleColumns+` FROM "Article" WHERE published = true ORDER BY "createdAt" DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticleByID returns one published article. pgx.ErrNoRows when absent.
func (q *Queries) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	row := q.db.pool.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM "Article" WHERE id = $1 AND published = true`, id)
	return scanArticle(row)
}

// CreateArticle inserts an article and returns the stored row.
func (q *Queries) CreateArticle(ctx context.Context, a model.Article) (model.Article, error) {
	content, err := json.Marshal(a.Content)
	if err != nil {
		return model.Article{}, fmt.Errorf("encoding article content: %w", err)
	}

	now := time.Now()
	row := q.db.pool.QueryRow(ctx,
		`INSERT INTO "Article" (title, excerpt, category, image, content, date, "readTime", published, "createdAt", "updatedAt")
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10)
		 RETURNING `+articleColumns,
		a.Title, a.Excerpt, a.Category, a.Image, content, a.Date, a.ReadTime, a.Published, now, now)
	return scanArticle(row)
}

// UpdateArticle rewrites an article row and returns the stored result.
// pgx.ErrNoRows when the id does not exist.
func (q *Queries) UpdateArticle(ctx context.Context, a model.Article) (model.Article, error) {
	content, err := json.Marshal(a.Content)
	if err != nil {
		return model.Article{}, fmt.Errorf("encoding article content: %w", err)
	}

	row := q.db.pool.QueryRow(ctx,
		`UPDATE "Article"
		 SET title = $1, excerpt = $2, category = $3, image = NULLIF($4, ''), content = $5,
		     date = $6, "readTime" = $7, published = $8, "updatedAt" = $9
		 WHERE id = $10
		 RETURNING `+articleColumns,
		a.Title, a.Excerpt, a.Category, a.Image, content, a.Date, a.ReadTime, a.Published, time.Now(), a.ID)
	return scanArticle(row)
}

// DeleteArticle removes an article. pgx.ErrNoRows when the id does not exist.
func (q *Queries) DeleteArticle(ctx context.Context, id int64) error {
	tag, err := q.db.pool.Exec(ctx, `DELETE FROM "Article" WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

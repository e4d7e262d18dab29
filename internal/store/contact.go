package store

import (
	"context"
	"time"

	"github.com/ruslanamed/clinic-go/internal/model"
)

// InsertContactMessage stores a contact form submission. The caller treats
// failure as best-effort logging only; the public endpoint reports success
// either way.
func (q *Queries) InsertContactMessage(ctx context.Context, m model.ContactMessage) error {
	_, err := q.db.pool.Exec(ctx,
		`INSERT INTO "ContactMessage" (name, email, phone, message, "createdAt")
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5)`,
		m.Name, m.Email, m.Phone, m.Message, time.Now())
	return err
}

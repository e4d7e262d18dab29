package store

import (
	"context"

	"github.com/ruslanamed/clinic-go/internal/model"
)

// GetUserByEmail returns a user by exact email. pgx.ErrNoRows when absent.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := q.db.pool.QueryRow(ctx,
		`SELECT id, email, password, name, role, "createdAt", "updatedAt"
		 FROM "User" WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

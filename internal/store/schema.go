package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ruslanamed/clinic-go/internal/auth"
	"github.com/ruslanamed/clinic-go/internal/model"
)

// schema creates the four tables the site owns. Statements are idempotent;
// there is no migration machinery by design.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS "User" (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(50) DEFAULT 'ADMIN',
		"createdAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		"updatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS "Article" (
		id SERIAL PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		excerpt TEXT NOT NULL,
		category VARCHAR(100) NOT NULL,
		image VARCHAR(500),
		content JSONB NOT NULL,
		date VARCHAR(100) NOT NULL,
		"readTime" VARCHAR(50) NOT NULL,
		published BOOLEAN DEFAULT false,
		"createdAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		"updatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS "GalleryImage" (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255),
		description TEXT,
		"imageUrl" VARCHAR(500) NOT NULL,
		"imageType" VARCHAR(50) DEFAULT 'image',
		"fileSize" INTEGER,
		width INTEGER,
		height INTEGER,
		"order" INTEGER DEFAULT 0,
		published BOOLEAN DEFAULT true,
		"createdAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		"updatedAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS "ContactMessage" (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		message TEXT NOT NULL,
		read BOOLEAN DEFAULT false,
		"createdAt" TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Init creates the tables and seeds the admin row. Callers treat a failure
// as entering degraded mode, not as fatal.
func (q *Queries) Init(ctx context.Context, adminEmail, adminPassword, adminName string) error {
	for _, stmt := range schema {
		if _, err := q.db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}

	return q.seedAdmin(ctx, adminEmail, adminPassword, adminName)
}

// seedAdmin inserts the admin user if no row with the configured email
// exists. The password is stored as a bcrypt hash.
func (q *Queries) seedAdmin(ctx context.Context, email, password, name string) error {
	_, err := q.GetUserByEmail(ctx, email)
	if err == nil {
		slog.Debug("admin user already exists, skipping seed", "email", email)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	now := time.Now()
	_, err = q.db.pool.Exec(ctx,
		`INSERT INTO "User" (email, password, name, role, "createdAt", "updatedAt")
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		email, hash, name, model.RoleAdmin, now, now)
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user", "email", email)
	return nil
}

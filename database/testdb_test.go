package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the application schema.
// The pool is pinned to one connection so every statement sees the same
// memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`CREATE TABLE users (
			id text PRIMARY KEY,
			name text NOT NULL,
			email text NOT NULL UNIQUE,
			password_hash text NOT NULL,
			phone text,
			role text NOT NULL DEFAULT 'CLIENT',
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE articles (
			id text PRIMARY KEY,
			title text NOT NULL,
			content text NOT NULL,
			image text,
			category text NOT NULL,
			slug text NOT NULL UNIQUE,
			author_id text NOT NULL,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE stories (
			id text PRIMARY KEY,
			title text NOT NULL,
			description text NOT NULL,
			image text,
			category text NOT NULL,
			slug text NOT NULL UNIQUE,
			author_id text NOT NULL,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE comments (
			id text PRIMARY KEY,
			content text NOT NULL,
			author_id text,
			guest_first_name text,
			guest_last_name text,
			guest_email text,
			article_id text,
			story_id text,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE inquiries (
			id text PRIMARY KEY,
			subject text NOT NULL,
			message text NOT NULL,
			status text NOT NULL DEFAULT 'PENDING',
			user_id text NOT NULL,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE consultations (
			id text PRIMARY KEY,
			subject text NOT NULL,
			description text NOT NULL,
			date datetime NOT NULL,
			status text NOT NULL DEFAULT 'REQUESTED',
			client_id text NOT NULL,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE messages (
			id text PRIMARY KEY,
			content text NOT NULL,
			is_read integer NOT NULL DEFAULT 0,
			sender_id text NOT NULL,
			created_at datetime,
			updated_at datetime
		)`,
		`CREATE TABLE team_members (
			id text PRIMARY KEY,
			name text NOT NULL,
			title text NOT NULL,
			description text NOT NULL,
			image text,
			linkedin text,
			email text,
			author_id text NOT NULL,
			created_at datetime,
			updated_at datetime
		)`,
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

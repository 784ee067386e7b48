package api

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/francislub/busines-consultant-sub001/models"
)

// newHandlerDB opens an in-memory sqlite database with the tables the handler
// tests touch. The pool is pinned to one connection so every statement sees
// the same memory database.
func newHandlerDB(t *testing.T) *gorm.DB {
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
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	user := models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

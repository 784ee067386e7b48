package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repo implements the CRUD surface shared by every entity repository once,
// instead of repeating it per entity. Per-entity repositories embed it and add
// their bespoke finders. Rows are always returned newest first.
type Repo[T any] struct {
	db       *gorm.DB
	preloads []string
}

func NewRepo[T any](db *gorm.DB, preloads ...string) Repo[T] {
	return Repo[T]{db: db, preloads: preloads}
}

// GetDB returns the underlying database connection for entity-specific queries
func (r Repo[T]) GetDB() *gorm.DB {
	return r.db
}

func (r Repo[T]) scope() *gorm.DB {
	scope := r.db
	for _, preload := range r.preloads {
		scope = scope.Preload(preload)
	}
	return scope
}

// FindAll returns all rows, newest first
func (r Repo[T]) FindAll() ([]*T, error) {
	var rows []*T
	err := r.scope().Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// FindPage returns one page of rows, newest first. page is 1-based.
func (r Repo[T]) FindPage(page, limit int) ([]*T, error) {
	if limit <= 0 {
		return r.FindAll()
	}
	if page < 1 {
		page = 1
	}

	var rows []*T
	err := r.scope().
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// FindByID returns the row with the given id or gorm.ErrRecordNotFound
func (r Repo[T]) FindByID(id uuid.UUID) (*T, error) {
	var row T
	err := r.scope().First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new row
func (r Repo[T]) Add(row *T) error {
	return r.db.Create(row).Error
}

// Save writes every field of an existing row back to the database
func (r Repo[T]) Save(row *T) error {
	return r.db.Save(row).Error
}

// Delete removes the row with the given id
func (r Repo[T]) Delete(id uuid.UUID) error {
	return r.db.Delete(new(T), "id = ?", id).Error
}

// Count returns the total number of rows
func (r Repo[T]) Count() (int64, error) {
	var count int64
	err := r.db.Model(new(T)).Count(&count).Error
	return count, err
}

// CountCreatedBetween counts rows created in the half-open interval [from, to)
func (r Repo[T]) CountCreatedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(new(T)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// Recent returns the newest rows, capped at limit
func (r Repo[T]) Recent(limit int) ([]*T, error) {
	var rows []*T
	err := r.scope().Order("created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}

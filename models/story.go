package models

import (
	"time"

	"github.com/google/uuid"
)

// Story represents a client success story shown on the marketing site.
type Story struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Image       *string   `json:"image,omitempty" db:"image" gorm:"type:text"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	AuthorID    uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Comments    []Comment `json:"comments,omitempty" gorm:"foreignKey:StoryID;references:ID"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

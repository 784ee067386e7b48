package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember represents a consultant bio on the team page.
type TeamMember struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Image       *string   `json:"image,omitempty" db:"image" gorm:"type:text"`
	LinkedIn    *string   `json:"linkedin,omitempty" db:"linkedin" gorm:"column:linkedin;type:text"`
	Email       *string   `json:"email,omitempty" db:"email" gorm:"type:text"`
	AuthorID    uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

// TableName keeps the table aligned with the singular page name used by the frontend.
func (TeamMember) TableName() string {
	return "team_members"
}

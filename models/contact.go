package models

import (
	"time"

	"github.com/google/uuid"
)

// Workflow states for a contact submission.
const (
	ContactStatusNew        = "NEW"
	ContactStatusInProgress = "IN_PROGRESS"
	ContactStatusCompleted  = "COMPLETED"
	ContactStatusArchived   = "ARCHIVED"
)

// Contact represents a public consultation-request form submission.
type Contact struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	FirstName string    `json:"firstName" db:"first_name" gorm:"type:text;not null"`
	LastName  string    `json:"lastName" db:"last_name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone     *string   `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Company   *string   `json:"company,omitempty" db:"company" gorm:"type:text"`
	Website   *string   `json:"website,omitempty" db:"website" gorm:"type:text"`
	City      *string   `json:"city,omitempty" db:"city" gorm:"type:text"`
	State     *string   `json:"state,omitempty" db:"state" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:'NEW'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

// ValidContactStatus reports whether s is one of the contact workflow states.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusCompleted, ContactStatusArchived:
		return true
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Workflow states for a client inquiry.
const (
	InquiryStatusPending  = "PENDING"
	InquiryStatusResolved = "RESOLVED"
	InquiryStatusClosed   = "CLOSED"
)

// Inquiry represents a question submitted by a signed-in client from the portal.
type Inquiry struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:'PENDING'"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

// ValidInquiryStatus reports whether s is one of the inquiry workflow states.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusPending, InquiryStatusResolved, InquiryStatusClosed:
		return true
	}
	return false
}

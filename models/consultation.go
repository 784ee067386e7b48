package models

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle states of a consultation booking.
const (
	ConsultationStatusRequested = "REQUESTED"
	ConsultationStatusConfirmed = "CONFIRMED"
	ConsultationStatusCompleted = "COMPLETED"
	ConsultationStatusCancelled = "CANCELLED"
)

// Consultation represents a consulting session requested by a client. Status
// transitions trigger best-effort email/SMS notifications to the client.
type Consultation struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Subject     string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Date        time.Time `json:"date" db:"date" gorm:"type:timestamp;not null"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null;default:'REQUESTED'"`
	ClientID    uuid.UUID `json:"clientId" db:"client_id" gorm:"type:uuid;not null"`
	Client      *User     `json:"client,omitempty" gorm:"foreignKey:ClientID;references:ID"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

// ValidConsultationStatus reports whether s is one of the consultation lifecycle states.
func ValidConsultationStatus(s string) bool {
	switch s {
	case ConsultationStatusRequested, ConsultationStatusConfirmed,
		ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	}
	return false
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a portal message between a client and the firm.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	IsRead    bool      `json:"isRead" db:"is_read" gorm:"not null;default:false"`
	SenderID  uuid.UUID `json:"senderId" db:"sender_id" gorm:"type:uuid;not null"`
	Sender    *User     `json:"sender,omitempty" gorm:"foreignKey:SenderID;references:ID"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

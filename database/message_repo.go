package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type MessageRepo struct {
	Repo[models.Message]
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{NewRepo[models.Message](db, "Sender")}
}

// FindBySender returns a user's messages, newest first
func (r *MessageRepo) FindBySender(senderID uuid.UUID) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.GetDB().Preload("Sender").
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

// CountBySender counts a user's messages
func (r *MessageRepo) CountBySender(senderID uuid.UUID) (int64, error) {
	var count int64
	err := r.GetDB().Model(&models.Message{}).
		Where("sender_id = ?", senderID).
		Count(&count).Error
	return count, err
}

// CountUnread counts messages not yet marked read
func (r *MessageRepo) CountUnread() (int64, error) {
	var count int64
	err := r.GetDB().Model(&models.Message{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

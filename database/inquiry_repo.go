package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type InquiryRepo struct {
	Repo[models.Inquiry]
}

func NewInquiryRepo(db *gorm.DB) *InquiryRepo {
	return &InquiryRepo{NewRepo[models.Inquiry](db, "User")}
}

// FindByUser returns a user's inquiries, newest first
func (r *InquiryRepo) FindByUser(userID uuid.UUID) ([]*models.Inquiry, error) {
	var inquiries []*models.Inquiry
	err := r.GetDB().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

// CountByUser counts a user's inquiries
func (r *InquiryRepo) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.GetDB().Model(&models.Inquiry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountByUserAndStatus counts a user's inquiries in a workflow state
func (r *InquiryRepo) CountByUserAndStatus(userID uuid.UUID, status string) (int64, error) {
	var count int64
	err := r.GetDB().Model(&models.Inquiry{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

package database

import (
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type ContactRepo struct {
	Repo[models.Contact]
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{NewRepo[models.Contact](db)}
}

// FindByStatus returns one page of contacts in a workflow state, newest first
func (r *ContactRepo) FindByStatus(status string, page, limit int) ([]*models.Contact, error) {
	if page < 1 {
		page = 1
	}

	var contacts []*models.Contact
	query := r.GetDB().
		Where("status = ?", status).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := query.Find(&contacts).Error
	return contacts, err
}

// CountByStatus counts contacts in a workflow state
func (r *ContactRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.GetDB().Model(&models.Contact{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

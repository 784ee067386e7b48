package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type ConsultationRepo struct {
	Repo[models.Consultation]
}

func NewConsultationRepo(db *gorm.DB) *ConsultationRepo {
	return &ConsultationRepo{NewRepo[models.Consultation](db, "Client")}
}

// FindByClient returns a client's consultations, newest first
func (r *ConsultationRepo) FindByClient(clientID uuid.UUID) ([]*models.Consultation, error) {
	var consultations []*models.Consultation
	err := r.GetDB().Preload("Client").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&consultations).Error
	return consultations, err
}

// CountByClient counts a client's consultations
func (r *ConsultationRepo) CountByClient(clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.GetDB().Model(&models.Consultation{}).
		Where("client_id = ?", clientID).
		Count(&count).Error
	return count, err
}

// CountByStatus counts consultations in a lifecycle state
func (r *ConsultationRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.GetDB().Model(&models.Consultation{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

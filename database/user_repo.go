package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type UserRepo struct {
	Repo[models.User]
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{NewRepo[models.User](db)}
}

// FindByEmail returns the user with the given email
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.GetDB().First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteCascade removes a user and every row that depends on them, in a fixed
// order inside one transaction: comments on the user's content, the user's own
// comments, messages, inquiries, consultations, then their articles, stories
// and team bios, and finally the user row itself.
func (r *UserRepo) DeleteCascade(id uuid.UUID) error {
	return r.GetDB().Transaction(func(tx *gorm.DB) error {
		ownedArticles := tx.Model(&models.Article{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("article_id IN (?)", ownedArticles).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		ownedStories := tx.Model(&models.Story{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("story_id IN (?)", ownedStories).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("author_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Inquiry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Consultation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Story{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

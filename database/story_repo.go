package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type StoryRepo struct {
	Repo[models.Story]
}

func NewStoryRepo(db *gorm.DB) *StoryRepo {
	return &StoryRepo{NewRepo[models.Story](db, "Author")}
}

// FindByCategory returns one page of stories in a category, newest first
func (r *StoryRepo) FindByCategory(category string, page, limit int) ([]*models.Story, error) {
	if page < 1 {
		page = 1
	}

	var stories []*models.Story
	query := r.GetDB().Preload("Author").
		Where("category = ?", category).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := query.Find(&stories).Error
	return stories, err
}

// FindByIDWithComments returns a story with its author and comments preloaded
func (r *StoryRepo) FindByIDWithComments(id uuid.UUID) (*models.Story, error) {
	var story models.Story
	err := r.GetDB().Preload("Author").Preload("Comments").Preload("Comments.Author").
		First(&story, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// SlugTaken reports whether a different story already uses the slug
func (r *StoryRepo) SlugTaken(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.GetDB().Model(&models.Story{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

// DeleteWithComments removes the story's comments and then the story itself
// inside one transaction.
func (r *StoryRepo) DeleteWithComments(id uuid.UUID) error {
	return r.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Story{}, "id = ?", id).Error
	})
}

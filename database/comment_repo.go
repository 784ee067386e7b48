package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type CommentRepo struct {
	Repo[models.Comment]
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{NewRepo[models.Comment](db, "Author")}
}

// FindByArticle returns the comments on an article, newest first
func (r *CommentRepo) FindByArticle(articleID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.GetDB().Preload("Author").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindByStory returns the comments on a story, newest first
func (r *CommentRepo) FindByStory(storyID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.GetDB().Preload("Author").
		Where("story_id = ?", storyID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type ArticleRepo struct {
	Repo[models.Article]
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{NewRepo[models.Article](db, "Author")}
}

// FindByCategory returns one page of articles in a category, newest first
func (r *ArticleRepo) FindByCategory(category string, page, limit int) ([]*models.Article, error) {
	if page < 1 {
		page = 1
	}

	var articles []*models.Article
	query := r.GetDB().Preload("Author").
		Where("category = ?", category).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := query.Find(&articles).Error
	return articles, err
}

// FindByIDWithComments returns an article with its author and comments preloaded
func (r *ArticleRepo) FindByIDWithComments(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.GetDB().Preload("Author").Preload("Comments").Preload("Comments.Author").
		First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindBySlug returns the article with the given slug
func (r *ArticleRepo) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.GetDB().Preload("Author").First(&article, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// SlugTaken reports whether a different article already uses the slug
func (r *ArticleRepo) SlugTaken(slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.GetDB().Model(&models.Article{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

// DeleteWithComments removes the article's comments and then the article itself
// inside one transaction.
func (r *ArticleRepo) DeleteWithComments(id uuid.UUID) error {
	return r.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, "id = ?", id).Error
	})
}

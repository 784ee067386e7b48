package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

func seedArticle(t *testing.T, db *gorm.DB, title, slug string, authorID uuid.UUID) models.Article {
	t.Helper()

	article := models.Article{
		ID:       uuid.New(),
		Title:    title,
		Content:  "body",
		Category: "STRATEGY",
		Slug:     slug,
		AuthorID: authorID,
	}
	require.NoError(t, db.Create(&article).Error)
	return article
}

func TestSlugTaken(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepo(db)

	author := seedUser(t, db, "Amina Diallo", "amina@example.com", models.RoleAdmin)
	existing := seedArticle(t, db, "Market Entry", "market-entry", author.ID)

	taken, err := repo.SlugTaken("market-entry", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	// an article keeps its own slug across updates
	taken, err = repo.SlugTaken("market-entry", existing.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.SlugTaken("fresh-slug", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestDeleteWithCommentsRemovesBoth(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepo(db)

	author := seedUser(t, db, "Amina Diallo", "amina@example.com", models.RoleAdmin)
	article := seedArticle(t, db, "Market Entry", "market-entry", author.ID)

	require.NoError(t, db.Create(&models.Comment{
		ID:        uuid.New(),
		Content:   "Insightful.",
		AuthorID:  &author.ID,
		ArticleID: &article.ID,
	}).Error)

	require.NoError(t, repo.DeleteWithComments(article.ID))

	assert.Zero(t, countWhere(t, db, &models.Article{}, "id = ?", article.ID))
	assert.Zero(t, countWhere(t, db, &models.Comment{}, "article_id = ?", article.ID))
}

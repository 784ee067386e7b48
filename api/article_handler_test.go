package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/cache"
	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/models"
)

func seedTestArticle(t *testing.T, db *gorm.DB, title, slug string, authorID uuid.UUID) models.Article {
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

func putArticleRequest(articleID uuid.UUID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("articleID", articleID.String())
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateArticleSlugCollision(t *testing.T) {
	db := newHandlerDB(t)
	handler := newArticleHandler(database.NewArticleRepo(db), cache.New(map[string]string{}))

	author := seedTestUser(t, db, "author@example.com", models.RoleAdmin)
	seedTestArticle(t, db, "Market Entry", "market-entry", author.ID)
	target := seedTestArticle(t, db, "Scaling Operations", "scaling-operations", author.ID)

	// retitling onto an existing slug answers 409 and leaves the row untouched
	rr := httptest.NewRecorder()
	handler.updateArticle()(rr, putArticleRequest(target.ID, `{"title":"Market Entry"}`))
	assert.Equal(t, http.StatusConflict, rr.Code)

	var stored models.Article
	require.NoError(t, db.First(&stored, "id = ?", target.ID).Error)
	assert.Equal(t, "Scaling Operations", stored.Title)
	assert.Equal(t, "scaling-operations", stored.Slug)

	// an unrelated title change regenerates the slug
	rr = httptest.NewRecorder()
	handler.updateArticle()(rr, putArticleRequest(target.ID, `{"title":"Scaling Faster"}`))
	assert.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, db.First(&stored, "id = ?", target.ID).Error)
	assert.Equal(t, "scaling-faster", stored.Slug)
}

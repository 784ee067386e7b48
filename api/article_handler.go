package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/cache"
	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type articleHandler struct {
	responder   Responder
	logger      zerolog.Logger
	articleRepo *database.ArticleRepo
	viewCache   *cache.ViewCache
}

func newArticleHandler(articleRepo *database.ArticleRepo, viewCache *cache.ViewCache) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		articleRepo: articleRepo,
		viewCache:   viewCache,
	}
}

// ArticleCollection represents a page of articles
type ArticleCollection struct {
	Articles []*models.Article `json:"articles"`
	Total    int               `json:"total"`
}

type createArticleRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Image    *string `json:"image"`
}

func (req createArticleRequest) validate() error {
	var fields []errs.FieldError
	if req.Title == "" {
		fields = append(fields, errs.RequiredField("title"))
	}
	if req.Content == "" {
		fields = append(fields, errs.RequiredField("content"))
	}
	if req.Category == "" {
		fields = append(fields, errs.RequiredField("category"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

type updateArticleRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Image    *string `json:"image"`
}

// getAllArticles lists articles, newest first
// @Summary List articles
// @Description Lists articles with their authors, optionally filtered by category and paginated
// @Tags Articles
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} ArticleCollection "Articles"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/articles [get]
func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pagination(r)

		var (
			articles []*models.Article
			err      error
		)
		if category := r.URL.Query().Get("category"); category != "" {
			articles, err = h.articleRepo.FindByCategory(category, page, limit)
		} else {
			articles, err = h.articleRepo.FindPage(page, limit)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find articles", "articles", err))
			return
		}

		h.responder.WriteJSON(w, ArticleCollection{Articles: articles, Total: len(articles)})
	}
}

// getArticle returns one article with its author and comments
// @Summary Get article
// @Tags Articles
// @Produce json
// @Param articleID path string true "Article ID" format(uuid)
// @Success 200 {object} models.Article "Article"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/articles/{articleID} [get]
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := pathID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.articleRepo.FindByIDWithComments(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

// createArticle creates an article authored by the signed-in admin. The slug
// is derived from the title and must be unique among articles.
func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var req createArticleRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		slug := models.Slugify(req.Title)
		taken, err := h.articleRepo.SlugTaken(slug, uuid.Nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check slug for", "article", err))
			return
		}
		if taken {
			h.responder.WriteError(w, errs.NewConflictError("an article with this title already exists"))
			return
		}

		article := models.Article{
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
			Image:    req.Image,
			Slug:     slug,
			AuthorID: principal.UserID,
		}
		if err := h.articleRepo.Add(&article); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "article", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/article")

		h.responder.WriteJSONStatus(w, http.StatusCreated, article)
	}
}

// updateArticle merges a partial update into an article. A changed title
// regenerates the slug, answering 409 when another article already uses it.
func (h articleHandler) updateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := pathID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		article, err := h.articleRepo.FindByID(articleID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}

		var req updateArticleRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Title != nil && *req.Title != article.Title {
			slug := models.Slugify(*req.Title)
			taken, err := h.articleRepo.SlugTaken(slug, article.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check slug for", "article", err))
				return
			}
			if taken {
				h.responder.WriteError(w, errs.NewConflictError("an article with this title already exists"))
				return
			}
			article.Title = *req.Title
			article.Slug = slug
		}
		if req.Content != nil {
			article.Content = *req.Content
		}
		if req.Category != nil {
			article.Category = *req.Category
		}
		if req.Image != nil {
			article.Image = req.Image
		}

		if err := h.articleRepo.Save(article); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "article", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/article")

		h.responder.WriteJSON(w, article)
	}
}

// deleteArticle removes an article and its comments
func (h articleHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleID, err := pathID(r, "articleID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.articleRepo.FindByID(articleID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}

		if err := h.articleRepo.DeleteWithComments(articleID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "article", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/article", "/api/comments")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "article deleted successfully",
		})
	}
}

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

type storyHandler struct {
	responder Responder
	logger    zerolog.Logger
	storyRepo *database.StoryRepo
	viewCache *cache.ViewCache
}

func newStoryHandler(storyRepo *database.StoryRepo, viewCache *cache.ViewCache) storyHandler {
	logger := log.With().Str("handlerName", "storyHandler").Logger()

	return storyHandler{
		responder: NewResponder(logger),
		logger:    logger,
		storyRepo: storyRepo,
		viewCache: viewCache,
	}
}

// StoryCollection represents a page of success stories
type StoryCollection struct {
	Stories []*models.Story `json:"stories"`
	Total   int             `json:"total"`
}

type createStoryRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
}

func (req createStoryRequest) validate() error {
	var fields []errs.FieldError
	if req.Title == "" {
		fields = append(fields, errs.RequiredField("title"))
	}
	if req.Description == "" {
		fields = append(fields, errs.RequiredField("description"))
	}
	if req.Category == "" {
		fields = append(fields, errs.RequiredField("category"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

type updateStoryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
}

// getAllStories lists success stories, newest first, optionally by category
func (h storyHandler) getAllStories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pagination(r)

		var (
			stories []*models.Story
			err     error
		)
		if category := r.URL.Query().Get("category"); category != "" {
			stories, err = h.storyRepo.FindByCategory(category, page, limit)
		} else {
			stories, err = h.storyRepo.FindPage(page, limit)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find stories", "stories", err))
			return
		}

		h.responder.WriteJSON(w, StoryCollection{Stories: stories, Total: len(stories)})
	}
}

func (h storyHandler) getStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := pathID(r, "storyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		story, err := h.storyRepo.FindByIDWithComments(storyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "story", err))
			return
		}

		h.responder.WriteJSON(w, story)
	}
}

func (h storyHandler) createStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var req createStoryRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		slug := models.Slugify(req.Title)
		taken, err := h.storyRepo.SlugTaken(slug, uuid.Nil)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check slug for", "story", err))
			return
		}
		if taken {
			h.responder.WriteError(w, errs.NewConflictError("a story with this title already exists"))
			return
		}

		story := models.Story{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Image:       req.Image,
			Slug:        slug,
			AuthorID:    principal.UserID,
		}
		if err := h.storyRepo.Add(&story); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "story", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/story")

		h.responder.WriteJSONStatus(w, http.StatusCreated, story)
	}
}

// updateStory merges a partial update; a changed title regenerates the slug,
// answering 409 when another story already uses it.
func (h storyHandler) updateStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := pathID(r, "storyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		story, err := h.storyRepo.FindByID(storyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "story", err))
			return
		}

		var req updateStoryRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Title != nil && *req.Title != story.Title {
			slug := models.Slugify(*req.Title)
			taken, err := h.storyRepo.SlugTaken(slug, story.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("check slug for", "story", err))
				return
			}
			if taken {
				h.responder.WriteError(w, errs.NewConflictError("a story with this title already exists"))
				return
			}
			story.Title = *req.Title
			story.Slug = slug
		}
		if req.Description != nil {
			story.Description = *req.Description
		}
		if req.Category != nil {
			story.Category = *req.Category
		}
		if req.Image != nil {
			story.Image = req.Image
		}

		if err := h.storyRepo.Save(story); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "story", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/story")

		h.responder.WriteJSON(w, story)
	}
}

func (h storyHandler) deleteStory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyID, err := pathID(r, "storyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.storyRepo.FindByID(storyID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "story", err))
			return
		}

		if err := h.storyRepo.DeleteWithComments(storyID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "story", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/story", "/api/comments")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "story deleted successfully",
		})
	}
}

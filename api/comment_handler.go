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

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	viewCache   *cache.ViewCache
}

func newCommentHandler(commentRepo *database.CommentRepo, viewCache *cache.ViewCache) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		viewCache:   viewCache,
	}
}

// CommentCollection represents the comments on one content item
type CommentCollection struct {
	Comments []*models.Comment `json:"comments"`
	Total    int               `json:"total"`
}

type createCommentRequest struct {
	Content        string     `json:"content"`
	ArticleID      *uuid.UUID `json:"articleId"`
	StoryID        *uuid.UUID `json:"storyId"`
	GuestFirstName *string    `json:"guestFirstName"`
	GuestLastName  *string    `json:"guestLastName"`
	GuestEmail     *string    `json:"guestEmail"`
}

// resolveParent applies the parent rule: a comment must reference exactly one
// of articleId/storyId. When both are supplied articleId wins.
func (req createCommentRequest) resolveParent() (articleID, storyID *uuid.UUID, err error) {
	switch {
	case req.ArticleID != nil:
		return req.ArticleID, nil, nil
	case req.StoryID != nil:
		return nil, req.StoryID, nil
	default:
		return nil, nil, errs.NewValidationError(
			errs.InvalidField("articleId", "one of articleId or storyId is required"),
		)
	}
}

// validate checks the request for a signed-in (authenticated=true) or guest commenter.
func (req createCommentRequest) validate(authenticated bool) error {
	var fields []errs.FieldError
	if req.Content == "" {
		fields = append(fields, errs.RequiredField("content"))
	}
	if !authenticated {
		if req.GuestFirstName == nil || *req.GuestFirstName == "" {
			fields = append(fields, errs.RequiredField("guestFirstName"))
		}
		if req.GuestLastName == nil || *req.GuestLastName == "" {
			fields = append(fields, errs.RequiredField("guestLastName"))
		}
		if req.GuestEmail == nil || *req.GuestEmail == "" {
			fields = append(fields, errs.RequiredField("guestEmail"))
		}
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// getComments lists the comments scoped to one article or story
func (h commentHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			comments []*models.Comment
			err      error
		)

		switch {
		case r.URL.Query().Get("articleId") != "":
			articleID, parseErr := uuid.Parse(r.URL.Query().Get("articleId"))
			if parseErr != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid articleId"))
				return
			}
			comments, err = h.commentRepo.FindByArticle(articleID)
		case r.URL.Query().Get("storyId") != "":
			storyID, parseErr := uuid.Parse(r.URL.Query().Get("storyId"))
			if parseErr != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid storyId"))
				return
			}
			comments, err = h.commentRepo.FindByStory(storyID)
		default:
			h.responder.WriteError(w, errs.NewBadRequestError("articleId or storyId query parameter is required"))
			return
		}

		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		h.responder.WriteJSON(w, CommentCollection{Comments: comments, Total: len(comments)})
	}
}

// createComment accepts a comment from a signed-in user or a guest visitor
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, authenticated := principalFromCtx(r.Context())

		var req createCommentRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(authenticated); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		articleID, storyID, err := req.resolveParent()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment := models.Comment{
			Content:   req.Content,
			ArticleID: articleID,
			StoryID:   storyID,
		}
		if authenticated {
			userID := principal.UserID
			comment.AuthorID = &userID
		} else {
			comment.GuestFirstName = req.GuestFirstName
			comment.GuestLastName = req.GuestLastName
			comment.GuestEmail = req.GuestEmail
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/comments", "/api/article", "/api/story")

		h.responder.WriteJSONStatus(w, http.StatusCreated, comment)
	}
}

// updateComment edits a comment's content, permitted for admins and the
// comment's own author.
func (h commentHandler) updateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		commentID, err := pathID(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comment", err))
			return
		}

		if !principal.IsAdmin() && !comment.IsAuthoredBy(principal.UserID) {
			h.responder.WriteError(w, errs.NewForbiddenError("only the comment author or an admin may edit it"))
			return
		}

		var req struct {
			Content string `json:"content"`
		}
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Content == "" {
			h.responder.WriteError(w, errs.NewValidationError(errs.RequiredField("content")))
			return
		}

		comment.Content = req.Content
		if err := h.commentRepo.Save(comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "comment", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/comments", "/api/article", "/api/story")

		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment removes a comment, permitted for admins and the comment's own author
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		commentID, err := pathID(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comment", err))
			return
		}

		if !principal.IsAdmin() && !comment.IsAuthoredBy(principal.UserID) {
			h.responder.WriteError(w, errs.NewForbiddenError("only the comment author or an admin may delete it"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/comments", "/api/article", "/api/story")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}

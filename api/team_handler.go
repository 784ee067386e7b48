package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/cache"
	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type teamHandler struct {
	responder Responder
	logger    zerolog.Logger
	teamRepo  *database.TeamRepo
	viewCache *cache.ViewCache
}

func newTeamHandler(teamRepo *database.TeamRepo, viewCache *cache.ViewCache) teamHandler {
	logger := log.With().Str("handlerName", "teamHandler").Logger()

	return teamHandler{
		responder: NewResponder(logger),
		logger:    logger,
		teamRepo:  teamRepo,
		viewCache: viewCache,
	}
}

// TeamCollection represents the team page roster
type TeamCollection struct {
	Members []*models.TeamMember `json:"members"`
	Total   int                  `json:"total"`
}

type createTeamMemberRequest struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	LinkedIn    *string `json:"linkedin"`
	Email       *string `json:"email"`
}

func (req createTeamMemberRequest) validate() error {
	var fields []errs.FieldError
	if req.Name == "" {
		fields = append(fields, errs.RequiredField("name"))
	}
	if req.Title == "" {
		fields = append(fields, errs.RequiredField("title"))
	}
	if req.Description == "" {
		fields = append(fields, errs.RequiredField("description"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

type updateTeamMemberRequest struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	LinkedIn    *string `json:"linkedin"`
	Email       *string `json:"email"`
}

func (h teamHandler) getAllMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pagination(r)

		members, err := h.teamRepo.FindPage(page, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team members", "team", err))
			return
		}

		h.responder.WriteJSON(w, TeamCollection{Members: members, Total: len(members)})
	}
}

func (h teamHandler) getMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := pathID(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member, err := h.teamRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "team member", err))
			return
		}

		h.responder.WriteJSON(w, member)
	}
}

func (h teamHandler) createMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var req createTeamMemberRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member := models.TeamMember{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			LinkedIn:    req.LinkedIn,
			Email:       req.Email,
			AuthorID:    principal.UserID,
		}
		if err := h.teamRepo.Add(&member); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "team member", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/team")

		h.responder.WriteJSONStatus(w, http.StatusCreated, member)
	}
}

func (h teamHandler) updateMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := pathID(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		member, err := h.teamRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "team member", err))
			return
		}

		var req updateTeamMemberRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Name != nil {
			member.Name = *req.Name
		}
		if req.Title != nil {
			member.Title = *req.Title
		}
		if req.Description != nil {
			member.Description = *req.Description
		}
		if req.Image != nil {
			member.Image = req.Image
		}
		if req.LinkedIn != nil {
			member.LinkedIn = req.LinkedIn
		}
		if req.Email != nil {
			member.Email = req.Email
		}

		if err := h.teamRepo.Save(member); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "team member", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/team")

		h.responder.WriteJSON(w, member)
	}
}

func (h teamHandler) deleteMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := pathID(r, "memberID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.teamRepo.FindByID(memberID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "team member", err))
			return
		}

		if err := h.teamRepo.Delete(memberID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "team member", err))
			return
		}

		h.viewCache.Invalidate(r.Context(), "/api/team")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "team member deleted successfully",
		})
	}
}

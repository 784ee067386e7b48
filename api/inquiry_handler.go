package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type inquiryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	inquiryRepo *database.InquiryRepo
}

func newInquiryHandler(inquiryRepo *database.InquiryRepo) inquiryHandler {
	logger := log.With().Str("handlerName", "inquiryHandler").Logger()

	return inquiryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		inquiryRepo: inquiryRepo,
	}
}

// InquiryCollection represents a list of client inquiries
type InquiryCollection struct {
	Inquiries []*models.Inquiry `json:"inquiries"`
	Total     int               `json:"total"`
}

type createInquiryRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (req createInquiryRequest) validate() error {
	var fields []errs.FieldError
	if req.Subject == "" {
		fields = append(fields, errs.RequiredField("subject"))
	}
	if req.Message == "" {
		fields = append(fields, errs.RequiredField("message"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// createInquiry files an inquiry for the signed-in client
func (h inquiryHandler) createInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var req createInquiryRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry := models.Inquiry{
			Subject: req.Subject,
			Message: req.Message,
			Status:  models.InquiryStatusPending,
			UserID:  principal.UserID,
		}
		if err := h.inquiryRepo.Add(&inquiry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "inquiry", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, inquiry)
	}
}

// getAllInquiries lists every inquiry for admins and only the caller's own for clients
func (h inquiryHandler) getAllInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var (
			inquiries []*models.Inquiry
			err       error
		)
		if principal.IsAdmin() {
			page, limit := pagination(r)
			inquiries, err = h.inquiryRepo.FindPage(page, limit)
		} else {
			inquiries, err = h.inquiryRepo.FindByUser(principal.UserID)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find inquiries", "inquiries", err))
			return
		}

		h.responder.WriteJSON(w, InquiryCollection{Inquiries: inquiries, Total: len(inquiries)})
	}
}

func (h inquiryHandler) getInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		inquiryID, err := pathID(r, "inquiryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry, err := h.inquiryRepo.FindByID(inquiryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "inquiry", err))
			return
		}

		if !principal.IsAdmin() && inquiry.UserID != principal.UserID {
			h.responder.WriteError(w, errs.NewForbiddenError("inquiry belongs to another client"))
			return
		}

		h.responder.WriteJSON(w, inquiry)
	}
}

// updateInquiryStatus moves an inquiry through the admin workflow
func (h inquiryHandler) updateInquiryStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiryID, err := pathID(r, "inquiryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry, err := h.inquiryRepo.FindByID(inquiryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "inquiry", err))
			return
		}

		var req struct {
			Status string `json:"status"`
		}
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !models.ValidInquiryStatus(req.Status) {
			h.responder.WriteError(w, errs.NewValidationError(
				errs.InvalidField("status", "must be one of PENDING, RESOLVED, CLOSED"),
			))
			return
		}

		inquiry.Status = req.Status
		if err := h.inquiryRepo.Save(inquiry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "inquiry", err))
			return
		}

		h.responder.WriteJSON(w, inquiry)
	}
}

// deleteInquiry removes an inquiry, permitted for admins and the owning client
func (h inquiryHandler) deleteInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		inquiryID, err := pathID(r, "inquiryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry, err := h.inquiryRepo.FindByID(inquiryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "inquiry", err))
			return
		}

		if !principal.IsAdmin() && inquiry.UserID != principal.UserID {
			h.responder.WriteError(w, errs.NewForbiddenError("inquiry belongs to another client"))
			return
		}

		if err := h.inquiryRepo.Delete(inquiryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "inquiry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "inquiry deleted successfully",
		})
	}
}

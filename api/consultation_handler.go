package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
	"github.com/francislub/busines-consultant-sub001/services"
)

type consultationHandler struct {
	responder        Responder
	logger           zerolog.Logger
	consultationRepo *database.ConsultationRepo
	notifier         *services.Notifier
}

func newConsultationHandler(consultationRepo *database.ConsultationRepo, notifier *services.Notifier) consultationHandler {
	logger := log.With().Str("handlerName", "consultationHandler").Logger()

	return consultationHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		consultationRepo: consultationRepo,
		notifier:         notifier,
	}
}

// ConsultationCollection represents a list of consultation bookings
type ConsultationCollection struct {
	Consultations []*models.Consultation `json:"consultations"`
	Total         int                    `json:"total"`
}

type createConsultationRequest struct {
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (req createConsultationRequest) validate() error {
	var fields []errs.FieldError
	if req.Subject == "" {
		fields = append(fields, errs.RequiredField("subject"))
	}
	if req.Description == "" {
		fields = append(fields, errs.RequiredField("description"))
	}
	if req.Date.IsZero() {
		fields = append(fields, errs.RequiredField("date"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

type updateConsultationRequest struct {
	Subject     *string    `json:"subject"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Status      *string    `json:"status"`
}

// createConsultation books a consultation for the signed-in client
func (h consultationHandler) createConsultation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var req createConsultationRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		consultation := models.Consultation{
			Subject:     req.Subject,
			Description: req.Description,
			Date:        req.Date,
			Status:      models.ConsultationStatusRequested,
			ClientID:    principal.UserID,
		}
		if err := h.consultationRepo.Add(&consultation); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "consultation", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, consultation)
	}
}

// getAllConsultations lists every consultation for admins and the caller's own for clients
func (h consultationHandler) getAllConsultations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var (
			consultations []*models.Consultation
			err           error
		)
		if principal.IsAdmin() {
			page, limit := pagination(r)
			consultations, err = h.consultationRepo.FindPage(page, limit)
		} else {
			consultations, err = h.consultationRepo.FindByClient(principal.UserID)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find consultations", "consultations", err))
			return
		}

		h.responder.WriteJSON(w, ConsultationCollection{Consultations: consultations, Total: len(consultations)})
	}
}

func (h consultationHandler) getConsultation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		consultationID, err := pathID(r, "consultationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		consultation, err := h.consultationRepo.FindByID(consultationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "consultation", err))
			return
		}

		if !principal.IsAdmin() && consultation.ClientID != principal.UserID {
			h.responder.WriteError(w, errs.NewForbiddenError("consultation belongs to another client"))
			return
		}

		h.responder.WriteJSON(w, consultation)
	}
}

// updateConsultation merges a partial update, permitted for admins and the
// owning client. A status change fires best-effort email/SMS notifications
// after the row is committed; a delivery failure never fails the request.
func (h consultationHandler) updateConsultation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		consultationID, err := pathID(r, "consultationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		consultation, err := h.consultationRepo.FindByID(consultationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "consultation", err))
			return
		}

		if !principal.IsAdmin() && consultation.ClientID != principal.UserID {
			h.responder.WriteError(w, errs.NewForbiddenError("consultation belongs to another client"))
			return
		}

		var req updateConsultationRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		statusChanged := false
		if req.Status != nil && *req.Status != consultation.Status {
			if !models.ValidConsultationStatus(*req.Status) {
				h.responder.WriteError(w, errs.NewValidationError(
					errs.InvalidField("status", "must be one of REQUESTED, CONFIRMED, COMPLETED, CANCELLED"),
				))
				return
			}
			consultation.Status = *req.Status
			statusChanged = true
		}
		if req.Subject != nil {
			consultation.Subject = *req.Subject
		}
		if req.Description != nil {
			consultation.Description = *req.Description
		}
		if req.Date != nil {
			consultation.Date = *req.Date
		}

		if err := h.consultationRepo.Save(consultation); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "consultation", err))
			return
		}

		if statusChanged {
			if err := h.notifier.ConsultationStatusChanged(consultation); err != nil {
				h.logger.Error().Err(err).
					Str("consultationID", consultation.ID.String()).
					Msg("consultation updated but notification delivery failed")
			}
		}

		h.responder.WriteJSON(w, consultation)
	}
}

func (h consultationHandler) deleteConsultation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		consultationID, err := pathID(r, "consultationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		consultation, err := h.consultationRepo.FindByID(consultationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "consultation", err))
			return
		}

		if !principal.IsAdmin() && consultation.ClientID != principal.UserID {
			h.responder.WriteError(w, errs.NewForbiddenError("consultation belongs to another client"))
			return
		}

		if err := h.consultationRepo.Delete(consultationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "consultation", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "consultation deleted successfully",
		})
	}
}

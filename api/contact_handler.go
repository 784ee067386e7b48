package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

// ContactCollection represents a page of contact submissions
type ContactCollection struct {
	Contacts []*models.Contact `json:"contacts"`
	Total    int               `json:"total"`
}

type createContactRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Company   *string `json:"company"`
	Website   *string `json:"website"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Message   string  `json:"message"`
}

func (req createContactRequest) validate() error {
	var fields []errs.FieldError
	if req.FirstName == "" {
		fields = append(fields, errs.RequiredField("firstName"))
	}
	if req.LastName == "" {
		fields = append(fields, errs.RequiredField("lastName"))
	}
	if req.Email == "" {
		fields = append(fields, errs.RequiredField("email"))
	}
	if req.Message == "" {
		fields = append(fields, errs.RequiredField("message"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// createContact accepts the public consultation-request form
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContactRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact := models.Contact{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Company:   req.Company,
			Website:   req.Website,
			City:      req.City,
			State:     req.State,
			Message:   req.Message,
			Status:    models.ContactStatusNew,
		}
		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, contact)
	}
}

// getAllContacts lists contact submissions for the admin inbox, optionally by status
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pagination(r)

		var (
			contacts []*models.Contact
			err      error
		)
		if status := r.URL.Query().Get("status"); status != "" {
			if !models.ValidContactStatus(status) {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid status filter"))
				return
			}
			contacts, err = h.contactRepo.FindByStatus(status, page, limit)
		} else {
			contacts, err = h.contactRepo.FindPage(page, limit)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contacts", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, ContactCollection{Contacts: contacts, Total: len(contacts)})
	}
}

func (h contactHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := pathID(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

// updateContactStatus advances a contact through the admin workflow
func (h contactHandler) updateContactStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := pathID(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		var req struct {
			Status string `json:"status"`
		}
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !models.ValidContactStatus(req.Status) {
			h.responder.WriteError(w, errs.NewValidationError(
				errs.InvalidField("status", "must be one of NEW, IN_PROGRESS, COMPLETED, ARCHIVED"),
			))
			return
		}

		contact.Status = req.Status
		if err := h.contactRepo.Save(contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}

		h.responder.WriteJSON(w, contact)
	}
}

func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := pathID(r, "contactID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.contactRepo.FindByID(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact deleted successfully",
		})
	}
}

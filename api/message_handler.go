package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
}

func newMessageHandler(messageRepo *database.MessageRepo) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

// MessageCollection represents a list of portal messages
type MessageCollection struct {
	Messages []*models.Message `json:"messages"`
	Total    int               `json:"total"`
}

// createMessage sends a portal message from the signed-in user
func (h messageHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
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

		message := models.Message{
			Content:  req.Content,
			SenderID: principal.UserID,
		}
		if err := h.messageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, message)
	}
}

// getAllMessages lists every message for admins and the caller's own for clients
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		var (
			messages []*models.Message
			err      error
		)
		if principal.IsAdmin() {
			page, limit := pagination(r)
			messages, err = h.messageRepo.FindPage(page, limit)
		} else {
			messages, err = h.messageRepo.FindBySender(principal.UserID)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find messages", "messages", err))
			return
		}

		h.responder.WriteJSON(w, MessageCollection{Messages: messages, Total: len(messages)})
	}
}

// markMessageRead flags a message as read, permitted for admins and the sender
func (h messageHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		messageID, err := pathID(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "message", err))
			return
		}

		if !principal.IsAdmin() && message.SenderID != principal.UserID {
			h.responder.WriteError(w, errs.NewForbiddenError("message belongs to another user"))
			return
		}

		message.IsRead = true
		if err := h.messageRepo.Save(message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "message", err))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		messageID, err := pathID(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "message", err))
			return
		}

		if !principal.IsAdmin() && message.SenderID != principal.UserID {
			h.responder.WriteError(w, errs.NewForbiddenError("message belongs to another user"))
			return
		}

		if err := h.messageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message deleted successfully",
		})
	}
}

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	userRepo      *database.UserRepo
	sessionSecret string
	sessionTTL    time.Duration
	localAuth     bool
}

func newAuthHandler(userRepo *database.UserRepo, sessionSecret string, sessionTTL time.Duration, localAuth bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		userRepo:      userRepo,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
		localAuth:     localAuth,
	}
}

// requireLocalAuth rejects password-based endpoints when session validation is
// delegated to Descope. A locally signed token would never pass the Descope
// verifier, so issuing one only produces sessions no middleware accepts.
func (h authHandler) requireLocalAuth(w http.ResponseWriter) bool {
	if h.localAuth {
		return true
	}
	h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable,
		"password login is disabled while Descope manages sessions"))
	return false
}

type registerRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Phone    *string `json:"phone"`
}

func (req registerRequest) validate() error {
	var fields []errs.FieldError
	if req.Name == "" {
		fields = append(fields, errs.RequiredField("name"))
	}
	if req.Email == "" {
		fields = append(fields, errs.RequiredField("email"))
	}
	if req.Password == "" {
		fields = append(fields, errs.RequiredField("password"))
	} else if len(req.Password) < 8 {
		fields = append(fields, errs.InvalidField("password", "must be at least 8 characters"))
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// SessionResponse carries a signed session token and the account it belongs to
type SessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// register creates a client account and signs them in
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.requireLocalAuth(w) {
			return
		}

		var req registerRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not hash password", err))
			return
		}

		user := models.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			Phone:        req.Phone,
			Role:         models.RoleClient,
		}
		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		token, err := IssueSessionToken(h.sessionSecret, user, h.sessionTTL)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not issue session token", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, SessionResponse{Token: token, User: user})
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login verifies credentials and returns a fresh session token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.requireLocalAuth(w) {
			return
		}

		var req loginRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError(
				errs.RequiredField("email"), errs.RequiredField("password"),
			))
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		token, err := IssueSessionToken(h.sessionSecret, *user, h.sessionTTL)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not issue session token", err))
			return
		}

		h.responder.WriteJSON(w, SessionResponse{Token: token, User: *user})
	}
}

// me echoes the account behind the current session
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		user, err := h.userRepo.FindByID(principal.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

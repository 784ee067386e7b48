package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

// UserCollection wraps a page of users with the overall count
type UserCollection struct {
	Users []*models.User `json:"users"`
	Total int64         `json:"total"`
}

func (h userHandler) getAllUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pagination(r)

		var users []*models.User
		var err error
		if limit > 0 {
			users, err = h.userRepo.FindPage(page, limit)
		} else {
			users, err = h.userRepo.FindAll()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "users", err))
			return
		}

		total, err := h.userRepo.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "users", err))
			return
		}

		h.responder.WriteJSON(w, UserCollection{Users: users, Total: total})
	}
}

func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// updateUser lets admins edit any account and clients edit their own.
// Role changes are admin-only.
func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := principalFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("missing session token"))
			return
		}

		id, err := pathID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !principal.IsAdmin() && principal.UserID != id {
			h.responder.WriteError(w, errs.NewForbiddenError("cannot edit another user's account"))
			return
		}

		var req updateUserRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.Phone != nil {
			user.Phone = req.Phone
		}
		if req.Password != nil {
			if len(*req.Password) < 8 {
				h.responder.WriteError(w, errs.NewValidationError(
					errs.InvalidField("password", "must be at least 8 characters"),
				))
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not hash password", err))
				return
			}
			user.PasswordHash = string(hash)
		}
		if req.Role != nil {
			if !principal.IsAdmin() {
				h.responder.WriteError(w, errs.NewForbiddenError("only admins may change roles"))
				return
			}
			if *req.Role != models.RoleAdmin && *req.Role != models.RoleClient {
				h.responder.WriteError(w, errs.NewValidationError(
					errs.InvalidField("role", "must be ADMIN or CLIENT"),
				))
				return
			}
			user.Role = *req.Role
		}

		if err := h.userRepo.Save(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

// deleteUser removes the account along with everything it owns
func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.userRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if err := h.userRepo.DeleteCascade(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "user deleted"})
	}
}

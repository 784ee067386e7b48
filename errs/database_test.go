package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	cases := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"wrapped record not found", fmt.Errorf("finding row: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "users_email_key"`), http.StatusConflict},
		{"sqlstate 23505", errors.New("ERROR: unique violation (SQLSTATE 23505)"), http.StatusConflict},
		{"foreign key", errors.New(`insert or update violates foreign key constraint "comments_article_id_fkey"`), http.StatusBadRequest},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error at or near SELECT"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewDatabaseError("find", "user", tc.cause)
			assert.Equal(t, tc.wantStatus, apiErr.StatusCode)
		})
	}
}

func TestNewDatabaseErrorPreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection reset by peer")
	apiErr := NewDatabaseError("list", "articles", cause)

	assert.Equal(t, cause, apiErr.Cause)
	assert.Contains(t, apiErr.GetFullError(), "connection reset by peer")
}

func TestValidationErrorCarriesFields(t *testing.T) {
	apiErr := NewValidationError(
		RequiredField("title"),
		InvalidField("category", "unknown category"),
	)

	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Len(t, apiErr.Fields, 2)
	assert.Equal(t, "title", apiErr.Fields[0].Field)
	assert.Equal(t, "title is required", apiErr.Fields[0].Message)
	assert.Equal(t, "unknown category", apiErr.Fields[1].Message)
	assert.True(t, errors.Is(apiErr, ErrValidation))
}

func TestApiErrStatusHelpers(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("gone").StatusCode)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("no").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("who").StatusCode)
	assert.Equal(t, http.StatusConflict, NewConflictError("dup").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("boom").StatusCode)
}

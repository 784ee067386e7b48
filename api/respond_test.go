package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francislub/busines-consultant-sub001/errs"
)

func testResponder() Responder {
	return NewResponder(zerolog.Nop())
}

func TestWriteErrorValidationShape(t *testing.T) {
	rec := httptest.NewRecorder()

	testResponder().WriteError(rec, errs.NewValidationError(
		errs.RequiredField("title"),
		errs.InvalidField("category", "unknown category"),
	))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.NotEmpty(t, body.Message)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "title", body.Errors[0].Field)
	assert.Equal(t, "title is required", body.Errors[0].Message)
}

func TestWriteErrorUnknownErrorBecomesGeneric500(t *testing.T) {
	rec := httptest.NewRecorder()

	testResponder().WriteError(rec, errors.New("pq: cannot connect, password=hunter2"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// internals never leak to the client
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.NewNotFoundError("article not found"), http.StatusNotFound},
		{errs.NewForbiddenError("admin role required"), http.StatusForbidden},
		{errs.NewUnauthorizedError("missing session token"), http.StatusUnauthorized},
		{errs.NewConflictError("slug already exists"), http.StatusConflict},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		testResponder().WriteError(rec, tc.err)
		assert.Equal(t, tc.want, rec.Code)
	}
}

func TestWriteJSONStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	testResponder().WriteJSONStatus(rec, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, rec.Body.String())
}

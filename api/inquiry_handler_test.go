package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/database"
	"github.com/francislub/busines-consultant-sub001/models"
)

func seedInquiry(t *testing.T, db *gorm.DB, ownerID uuid.UUID) models.Inquiry {
	t.Helper()

	inquiry := models.Inquiry{
		ID:      uuid.New(),
		Subject: "Pricing",
		Message: "What are your rates?",
		Status:  models.InquiryStatusPending,
		UserID:  ownerID,
	}
	require.NoError(t, db.Create(&inquiry).Error)
	return inquiry
}

func deleteInquiryRequest(inquiryID uuid.UUID, principal Principal) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("inquiryID", inquiryID.String())
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = ctxWithPrincipal(ctx, principal)
	return req.WithContext(ctx)
}

func TestDeleteInquiryRequiresAdminOrOwner(t *testing.T) {
	db := newHandlerDB(t)
	handler := newInquiryHandler(database.NewInquiryRepo(db))

	owner := seedTestUser(t, db, "owner@example.com", models.RoleClient)
	other := seedTestUser(t, db, "other@example.com", models.RoleClient)
	admin := seedTestUser(t, db, "admin@example.com", models.RoleAdmin)

	inquiry := seedInquiry(t, db, owner.ID)

	// another client is refused and the row survives
	rr := httptest.NewRecorder()
	handler.deleteInquiry()(rr, deleteInquiryRequest(inquiry.ID, Principal{UserID: other.ID, Role: other.Role}))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	var count int64
	require.NoError(t, db.Model(&models.Inquiry{}).Where("id = ?", inquiry.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// the owning client may delete it
	rr = httptest.NewRecorder()
	handler.deleteInquiry()(rr, deleteInquiryRequest(inquiry.ID, Principal{UserID: owner.ID, Role: owner.Role}))
	assert.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, db.Model(&models.Inquiry{}).Where("id = ?", inquiry.ID).Count(&count).Error)
	assert.Zero(t, count)

	// admins may delete any client's inquiry
	second := seedInquiry(t, db, owner.ID)
	rr = httptest.NewRecorder()
	handler.deleteInquiry()(rr, deleteInquiryRequest(second.ID, Principal{UserID: admin.ID, Role: admin.Role}))
	assert.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, db.Model(&models.Inquiry{}).Where("id = ?", second.ID).Count(&count).Error)
	assert.Zero(t, count)
}

package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/francislub/busines-consultant-sub001/models"
)

// Principal is the request-scoped identity extracted from the session token.
// Handlers receive it through the request context instead of consulting any
// global session state, so authorization is testable without an auth provider.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal adds the authenticated principal to the context
func ctxWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// principalFromCtx retrieves the authenticated principal from the context
func principalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

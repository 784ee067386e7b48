package api

import (
	"context"
	"fmt"
	"time"

	descopeclient "github.com/descope/go-sdk/descope/client"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/francislub/busines-consultant-sub001/config"
	"github.com/francislub/busines-consultant-sub001/errs"
	"github.com/francislub/busines-consultant-sub001/models"
)

// SessionVerifier turns a bearer token into a Principal. The concrete
// implementation is chosen at startup: Descope when a project ID is
// configured, otherwise locally signed JWTs.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// newSessionVerifier picks the verifier implementation from configuration.
func newSessionVerifier(cfg map[string]string) (SessionVerifier, error) {
	if projectID := config.GetString(cfg, "DESCOPE_PROJECT_ID", ""); projectID != "" {
		log.Info().Msg("using Descope for session validation")
		return newDescopeVerifier(projectID)
	}

	secret := config.GetString(cfg, "SESSION_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set when Descope is not configured")
	}
	return jwtVerifier{secret: []byte(secret)}, nil
}

// jwtVerifier validates HS256 tokens issued by the login endpoint.
type jwtVerifier struct {
	secret []byte
}

func (v jwtVerifier) Verify(_ context.Context, tokenStr string) (Principal, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Principal{}, errs.NewUnauthorizedError("invalid session token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, errs.NewUnauthorizedError("invalid session token")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return Principal{}, errs.NewUnauthorizedError("session token has no subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedError("session token subject is not a user id")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleClient
	}

	return Principal{UserID: userID, Role: role}, nil
}

// IssueSessionToken signs a session JWT carrying the user's id and role.
func IssueSessionToken(secret string, user models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// descopeVerifier delegates session validation to Descope. The Descope tenant
// is configured to embed the application user id and role as custom claims.
type descopeVerifier struct {
	client *descopeclient.DescopeClient
}

func newDescopeVerifier(projectID string) (*descopeVerifier, error) {
	c, err := descopeclient.NewWithConfig(&descopeclient.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("initializing Descope client: %w", err)
	}
	return &descopeVerifier{client: c}, nil
}

func (v *descopeVerifier) Verify(ctx context.Context, tokenStr string) (Principal, error) {
	ok, token, err := v.client.Auth.ValidateSessionWithToken(ctx, tokenStr)
	if err != nil || !ok {
		return Principal{}, errs.NewUnauthorizedError("invalid session token")
	}

	idStr, _ := token.Claims["userId"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedError("session token carries no valid user id claim")
	}

	role, _ := token.Claims["role"].(string)
	if role == "" {
		role = models.RoleClient
	}

	return Principal{UserID: userID, Role: role}, nil
}

package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
)

// Identity is the caller extracted from a verified access token.
type Identity struct {
	UserID string
	Role   user.Role
}

// Service verifies access tokens and extracts the caller identity.
// Token issuance lives in the identity provider, not here.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	IdentityFromContext(ctx context.Context) (Identity, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// IdentityFromContext reads user_id and role claims from the verified token.
func (j *JWTService) IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, user.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, user.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return Identity{}, user.ErrInvalidToken
	}

	role := user.Role(roleStr)
	if !role.IsValid() {
		return Identity{}, user.ErrInvalidToken
	}

	return Identity{UserID: userID, Role: role}, nil
}

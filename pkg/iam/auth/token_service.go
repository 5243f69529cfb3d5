package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hiredeck/talentgate/pkg/kernel"
)

// TokenClaims is the decoded content of a validated access token.
type TokenClaims struct {
	TokenID   string
	UserID    kernel.UserID
	Email     kernel.Email
	Role      Role
	ExpiresAt time.Time
}

// TokenService issues and validates access tokens. The production
// implementation is JWT-based; tests substitute their own.
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email kernel.Email, role Role) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// JWTService implements TokenService with HS256-signed JWTs.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// GenerateAccessToken issues a signed token for the given identity.
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, role Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"jti":   uuid.NewString(),
		"sub":   userID.String(),
		"email": email.String(),
		"role":  string(role),
		"iss":   s.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and verifies a token string and returns its
// claims. Any parse, signature, or expiry failure yields ErrInvalidToken.
func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken().WithCause(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken()
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken().WithDetail("claim", "sub")
	}

	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	tokenID, _ := claims["jti"].(string)

	role := Role(roleStr)
	if !role.Valid() {
		role = RoleApplicant
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return &TokenClaims{
		TokenID:   tokenID,
		UserID:    kernel.UserID(sub),
		Email:     kernel.Email(email),
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

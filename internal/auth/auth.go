package auth

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

const (
	RoleAdmin     = "ADMIN"
	RoleEmployee  = "EMPLOYEE"
	RoleDashboard = "DASHBOARD"
)

// ctxKey is how claims are stored and retrieved from a request context.
type ctxKey int

// Key is the request context key for authenticated claims.
const Key ctxKey = 1

// Claims is the payload carried in both access and refresh tokens.
type Claims struct {
	jwt.StandardClaims
	UserId int    `json:"user_id"`
	Role   string `json:"role"`
}

// Authorized reports whether the claims' role is one of the given roles.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth signs and validates HS256 tokens with a shared key.
type Auth struct {
	key []byte
}

func New(key string) *Auth {
	return &Auth{key: []byte(key)}
}

// GenerateTokens mints an access token (12h) and a refresh token (7d) for the
// given user.
func (a *Auth) GenerateTokens(userID int, role string) (string, string, error) {
	now := time.Now()

	accessClaims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(12 * time.Hour).Unix(),
		},
		UserId: userID,
		Role:   role,
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(a.key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refreshClaims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(7 * 24 * time.Hour).Unix(),
		},
		UserId: userID,
		Role:   role,
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(a.key)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return access, refresh, nil
}

// ValidateToken parses and verifies a token produced by GenerateTokens.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	return claims, nil
}

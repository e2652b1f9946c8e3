package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-westeros/pkg/config"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "westeros_session"

// SessionClaims identifies the acting profile on rule endpoints. The oath
// endpoint issues these; nothing else about authentication is modeled here.
type SessionClaims struct {
	ProfileID string `json:"profile_id"`
	RealmKey  string `json:"realm_key"`
	Pseudo    string `json:"pseudo"`
	jwt.RegisteredClaims
}

// SessionAuth validates realm session tokens for Huma operations.
type SessionAuth struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionAuth() *SessionAuth {
	return &SessionAuth{
		secret: []byte(config.GetJWTSecret()),
		ttl:    24 * time.Hour,
	}
}

// IssueToken signs a session token for a freshly sworn profile.
func (a *SessionAuth) IssueToken(profileID, realmKey, pseudo string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		ProfileID: profileID,
		RealmKey:  realmKey,
		Pseudo:    pseudo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			Issuer:    "westeros",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token string.
func (a *SessionAuth) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session claims")
	}
	return claims, nil
}

// ValidateAuthFromHeaders resolves the acting profile from an Authorization
// header or the session cookie. Returns a huma 401 when neither carries a
// valid token.
func (a *SessionAuth) ValidateAuthFromHeaders(authHeader, cookieHeader string) (*SessionClaims, error) {
	token := extractBearerToken(authHeader)
	if token == "" && cookieHeader != "" {
		token = extractCookieToken(cookieHeader)
	}
	if token == "" {
		return nil, huma.Error401Unauthorized("Authentication required")
	}

	claims, err := a.ValidateToken(token)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid session token", err)
	}
	return claims, nil
}

// BuildSessionCookie renders the Set-Cookie value carrying a session token.
func (a *SessionAuth) BuildSessionCookie(token string) string {
	return fmt.Sprintf("%s=%s; Path=/; HttpOnly; SameSite=Lax; Max-Age=%d",
		sessionCookieName, token, int(a.ttl.Seconds()))
}

func extractBearerToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func extractCookieToken(cookieHeader string) string {
	for _, cookie := range strings.Split(cookieHeader, ";") {
		cookie = strings.TrimSpace(cookie)
		if strings.HasPrefix(cookie, sessionCookieName+"=") {
			return strings.TrimPrefix(cookie, sessionCookieName+"=")
		}
	}
	return ""
}

// SessionContextKey key for storing session claims in request context
type SessionContextKey string

const SessionContextKeyClaims = SessionContextKey("session_claims")

// GetSessionClaims retrieves session claims from a context
func GetSessionClaims(ctx context.Context) *SessionClaims {
	if claims, ok := ctx.Value(SessionContextKeyClaims).(*SessionClaims); ok {
		return claims
	}
	return nil
}

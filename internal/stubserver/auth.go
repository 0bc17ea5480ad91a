package stubserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenHeader is the header admins authenticate with.
const tokenHeader = "x-access-token"

// AuthManager issues and validates the stub server's session tokens: HS256
// JWTs with a fixed validity window, revocable through the blacklist.
type AuthManager struct {
	secret    []byte
	tokenTTL  time.Duration
	blacklist *Blacklist
}

// NewAuthManager creates an auth manager signing tokens with secret, valid
// for ttl.
func NewAuthManager(secret string, ttl time.Duration) *AuthManager {
	return &AuthManager{
		secret:    []byte(secret),
		tokenTTL:  ttl,
		blacklist: NewBlacklist(ttl, time.Minute),
	}
}

// Stop releases the blacklist's cleanup goroutine.
func (a *AuthManager) Stop() {
	a.blacklist.Stop()
}

// Issue signs a token for the given admin.
func (a *AuthManager) Issue(adminID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   adminID,
		"user": username,
		"iat":  now.Unix(),
		"exp":  now.Add(a.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Validate checks a token and returns the admin id it was issued for.
func (a *AuthManager) Validate(tokenString string) (string, error) {
	if a.blacklist.Contains(tokenString) {
		return "", errors.New("token has been revoked")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	adminID, ok := claims["id"].(string)
	if !ok {
		return "", errors.New("invalid id claim")
	}
	return adminID, nil
}

// Revoke blacklists a token until its validity window has passed.
func (a *AuthManager) Revoke(tokenString string) {
	a.blacklist.Add(tokenString)
}

// adminIDKey carries the authenticated admin id through the request context.
type adminIDKey struct{}

func withAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey{}, adminID)
}

func adminIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(adminIDKey{}).(string)
	return id
}

// RequireToken guards a handler behind x-access-token validation, matching
// the production API's responses for missing and invalid tokens.
func (a *AuthManager) RequireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(tokenHeader)
		if token == "" {
			slog.Warn("Authentication failed: missing token", "remote_addr", r.RemoteAddr)
			writeJSONResponse(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing"})
			return
		}

		adminID, err := a.Validate(token)
		if err != nil {
			slog.Warn("Authentication failed: invalid token", "remote_addr", r.RemoteAddr, "error", err)
			writeJSONResponse(w, http.StatusUnauthorized, map[string]string{
				"message": "Token is invalid",
				"error":   err.Error(),
			})
			return
		}

		next(w, r.WithContext(withAdminID(r.Context(), adminID)))
	}
}

// HashPassword returns the hex sha256 digest the store keeps instead of the
// plaintext password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

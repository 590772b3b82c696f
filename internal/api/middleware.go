package api

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"workout-tracker/internal/config"
)

// Context key for the authenticated subject
const ContextUserIDKey = "userID"

// TokenVerifier checks bearer tokens issued by the external identity
// provider. This service never issues tokens itself; the verified
// subject claim becomes the userId every store operation is scoped to.
type TokenVerifier struct {
	issuer    string
	audience  string
	publicKey *rsa.PublicKey
	devSecret []byte
}

// NewTokenVerifier builds a verifier from config. RS256 against the
// provider's public key is the normal mode; the HS256 dev secret is a
// fallback for local runs only.
func NewTokenVerifier(cfg config.AuthConfig) (*TokenVerifier, error) {
	v := &TokenVerifier{
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}
	if cfg.PublicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse auth public key: %w", err)
		}
		v.publicKey = key
		return v, nil
	}
	if cfg.DevSecret == "" {
		return nil, errors.New("auth requires either public_key_pem or dev_secret")
	}
	v.devSecret = []byte(cfg.DevSecret)
	return v, nil
}

// NewRSAVerifier builds a verifier directly from a parsed key. Used by
// tests that sign their own tokens.
func NewRSAVerifier(issuer, audience string, key *rsa.PublicKey) *TokenVerifier {
	return &TokenVerifier{issuer: issuer, audience: audience, publicKey: key}
}

// Verify parses and validates a token string and returns its subject.
func (v *TokenVerifier) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if v.publicKey != nil {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.publicKey, nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.devSecret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject claim")
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return "", errors.New("token issuer mismatch")
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return "", errors.New("token audience mismatch")
	}
	return claims.Subject, nil
}

// AuthMiddleware creates a Gin middleware for bearer-token auth. A
// missing or invalid token fails the whole request before any handler
// logic runs.
func AuthMiddleware(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		subject, err := verifier.Verify(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err))
			}
			return
		}

		c.Set(ContextUserIDKey, subject)
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithInternalError returns a generic 500 body plus a
// machine-readable message field for diagnostics; no stack traces or
// driver internals reach the client beyond the error string.
func abortWithInternalError(c *gin.Context, message string, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   message,
		"message": err.Error(),
	})
}

// Helper function to get the authenticated user id from context.
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"registro/internal/config"
	"registro/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// SubjectKey is the context key under which the authenticated token subject
// is stored.
const SubjectKey contextKey = "subject"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application
// config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens on v1 routes.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key and returns a SecHandler.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Authenticate verifies the given bearer token and returns a context carrying
// the token subject.
func (s *SecHandler) Authenticate(ctx context.Context, token string) (context.Context, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if !parsed.Valid {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid token")
	}
	if claims.Subject == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "missing token subject")
	}

	return context.WithValue(ctx, SubjectKey, claims.Subject), nil
}

// Middleware enforces bearer authentication on every wrapped route.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.Authenticate(ctx, token)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the authenticated token subject, or an empty
// string when the request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)

	return subject
}

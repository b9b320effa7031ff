package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"registro/internal/api/handler/v1handler"
	"registro/pkg/serrors"

	"github.com/stretchr/testify/require"

	"github.com/golang-jwt/jwt/v5"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestAuthenticate_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signJWTRS256(t, priv, "merendeira", now.Add(-time.Minute), now.Add(time.Hour))

	ctx, err := sh.Authenticate(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "merendeira", v1handler.SubjectFromContext(ctx))
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signJWTRS256(t, priv, "merendeira", now.Add(-2*time.Hour), now.Add(-time.Hour))

	_, err := sh.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuthenticate_WrongKey(t *testing.T) {
	otherPriv, _ := genRSAKeys(t)
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signJWTRS256(t, otherPriv, "merendeira", now.Add(-time.Minute), now.Add(time.Hour))

	_, err := sh.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuthenticate_MissingSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	now := time.Now()
	token := signJWTRS256(t, priv, "", now.Add(-time.Minute), now.Add(time.Hour))

	_, err := sh.Authenticate(context.Background(), token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAuthenticate_WrongSigningMethod(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	claims := jwt.RegisteredClaims{
		Subject:   "merendeira",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, authErr := sh.Authenticate(context.Background(), token)
	require.ErrorIs(t, authErr, serrors.ErrUnauthorized)
}

func TestMiddleware(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = v1handler.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := sh.Middleware(next)

	// no Authorization header
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// malformed header
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	req.Header.Set("Authorization", "Token abc")
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid bearer token
	now := time.Now()
	token := signJWTRS256(t, priv, "merendeira", now.Add(-time.Minute), now.Add(time.Hour))
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "merendeira", gotSubject)
}

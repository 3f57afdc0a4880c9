package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/textlab/textapi/config"
)

const JwtAlg = "HS256"

var ErrSecretNotSet = errors.New(
	"auth secret not set. Ensure TEXTAPI_AUTH_SECRET is set in your environment",
)

// GenerateJWT issues a bearer token signed with the configured secret.
func GenerateJWT(cfg *config.Config) (string, error) {
	tokenAuth, err := newTokenAuth(cfg)
	if err != nil {
		return "", err
	}

	claims := map[string]interface{}{"sub": "textapi"}
	jwtauth.SetIssuedNow(claims)

	_, tokenString, err := tokenAuth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("error generating auth token: %w", err)
	}

	return tokenString, nil
}

// JWTVerifier returns a middleware that reads bearer tokens from the
// Authorization header. Pair it with jwtauth.Authenticator to reject requests.
func JWTVerifier(cfg *config.Config) (func(http.Handler) http.Handler, error) {
	tokenAuth, err := newTokenAuth(cfg)
	if err != nil {
		return nil, err
	}
	return jwtauth.Verifier(tokenAuth), nil
}

func newTokenAuth(cfg *config.Config) (*jwtauth.JWTAuth, error) {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		return nil, ErrSecretNotSet
	}
	return jwtauth.New(JwtAlg, secret, nil), nil
}

// Package auth provides concrete implementations of the caller identity verifier.
package auth

import (
	"context"
	"time"

	"cleanrecord/config"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims are the claims carried by tokens of the JWT provider.
type IdentityClaims struct {
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Locale     string `json:"locale,omitempty"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 tokens signed by the identity provider with a shared secret.
type jwtVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("auth.secret must be provided for the jwt provider")
	}

	return &jwtVerifier{
		secret: []byte(cfg.Auth.Secret),
		issuer: cfg.Auth.Issuer,
	}, nil
}

// Verify implements service.IdentityVerifier.
func (v *jwtVerifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &IdentityClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &entity.Identity{
		Subject:    claims.Subject,
		Email:      claims.Email,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Locale:     claims.Locale,
	}, nil
}

// SignToken issues a token for the given identity. It is used by local tooling and tests
// where no external provider is running.
func SignToken(secret, issuer string, identity *entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Email:      identity.Email,
		GivenName:  identity.GivenName,
		FamilyName: identity.FamilyName,
		Locale:     identity.Locale,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

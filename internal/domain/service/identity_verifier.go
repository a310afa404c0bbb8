package service

import (
	"context"

	"cleanrecord/internal/domain/entity"
)

// IdentityVerifier turns a bearer token issued by the external identity provider into a caller identity
type IdentityVerifier interface {
	// Verify validates the token and returns the caller it was issued to
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}

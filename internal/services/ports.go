package services

import (
	"context"

	"go.opentelemetry.io/otel"
)

//go:generate mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks

// IdentityProvider resolves session tokens and removes identities.
// *identity.Service satisfies it.
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	DeleteIdentity(ctx context.Context, userID string) error
}

var tracer = otel.Tracer("secret-friends/services")

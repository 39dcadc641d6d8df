package auth

import (
	"context"

	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

type contextKey struct{ name string }

var sessionKey = contextKey{"auth_session"}

// WithSession devuelve un contexto con la sesión autenticada.
func WithSession(ctx context.Context, s *entity.AuthSession) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext devuelve la sesión y true si existe.
func SessionFromContext(ctx context.Context) (*entity.AuthSession, bool) {
	s, ok := ctx.Value(sessionKey).(*entity.AuthSession)
	return s, ok && s != nil
}

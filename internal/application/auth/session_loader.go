package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

// AccountReader lectura de usuario con membresías en una sola consulta.
type AccountReader interface {
	GetAccountByID(ctx context.Context, id string) (*entity.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
}

// SessionLoader construye la sesión autenticada desde el almacén de credenciales.
// No guarda nada en memoria: cada llamada lee el estado actual.
type SessionLoader struct {
	accounts AccountReader
}

// NewSessionLoader construye el loader.
func NewSessionLoader(accounts AccountReader) *SessionLoader {
	return &SessionLoader{accounts: accounts}
}

// LoadByID devuelve la sesión del usuario o (nil, nil) si el usuario no existe.
func (l *SessionLoader) LoadByID(ctx context.Context, userID string) (*entity.AuthSession, error) {
	acc, err := l.accounts.GetAccountByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cargar sesión por id: %w", err)
	}
	return entity.NewAuthSession(acc), nil
}

// LoadByEmail devuelve la sesión y el hash almacenado; solo lo usa el flujo de login.
func (l *SessionLoader) LoadByEmail(ctx context.Context, email string) (*entity.AuthSession, string, error) {
	acc, err := l.accounts.GetAccountByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, "", fmt.Errorf("cargar sesión por email: %w", err)
	}
	if acc == nil {
		return nil, "", nil
	}
	return entity.NewAuthSession(acc), acc.User.PasswordHash, nil
}

// NormalizeEmail recorta espacios y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package auth

import (
	"context"

	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

// RegistrationTxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error no se persiste nada.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		users repository.UserRepository,
		orgs repository.OrganizationRepository,
		memberships repository.MembershipRepository,
	) error) error
}

// TokenIssuer emite tokens para un usuario autenticado.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// PasswordHasher genera y compara hashes de contraseña.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// LocaleResolver normaliza el idioma preferido del usuario.
type LocaleResolver interface {
	Resolve(raw string) string
}

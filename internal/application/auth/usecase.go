package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	tx       RegistrationTxRunner
	users    repository.UserRepository
	sessions *SessionLoader
	tokens   TokenIssuer
	hasher   PasswordHasher
	locales  LocaleResolver
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	tx RegistrationTxRunner,
	users repository.UserRepository,
	sessions *SessionLoader,
	tokens TokenIssuer,
	hasher PasswordHasher,
	locales LocaleResolver,
) *AuthUseCase {
	return &AuthUseCase{
		tx:       tx,
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		hasher:   hasher,
		locales:  locales,
		now:      time.Now,
	}
}

// Register crea usuario, organización y membresía OWNER en una sola transacción.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := NormalizeEmail(in.Email)
	orgName := strings.TrimSpace(in.OrgName)
	if len(orgName) < 2 {
		return nil, fmt.Errorf("%w: orgName debe tener al menos 2 caracteres", domain.ErrInvalidInput)
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := uc.now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		Locale:       uc.locales.Resolve(in.Locale),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      orgName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	membership := &entity.Membership{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           entity.RoleOwner,
		CreatedAt:      now,
	}

	err = uc.tx.RunRegistration(ctx, func(
		users repository.UserRepository,
		orgs repository.OrganizationRepository,
		memberships repository.MembershipRepository,
	) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if err := orgs.Create(ctx, org); err != nil {
			return err
		}
		return memberships.Create(ctx, membership)
	})
	if err != nil {
		return nil, err
	}

	orgView := entity.OrgMembership{OrganizationID: org.ID, OrganizationName: org.Name, Role: entity.RoleOwner}
	session := entity.NewAuthSession(&entity.Account{User: *user, Memberships: []entity.OrgMembership{orgView}})
	return &dto.RegisterResponse{
		User: ToUserResponse(session),
		Org:  toOrgMembershipResponse(orgView),
	}, nil
}

// Login verifica email/password y emite un token.
// Email desconocido y password incorrecto devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	session, hash, err := uc.sessions.LoadByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.hasher.Compare(hash, in.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.tokens.Issue(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: ToUserResponse(session)}, nil
}

// Me devuelve el perfil de la sesión autenticada.
func (uc *AuthUseCase) Me(session *entity.AuthSession) (*dto.MeResponse, error) {
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.MeResponse{User: ToUserResponse(session)}, nil
}

// IsCredentialError informa si err corresponde a credenciales inválidas.
func IsCredentialError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrUserNotFound)
}

// ToUserResponse proyecta la sesión al DTO público.
func ToUserResponse(s *entity.AuthSession) dto.UserResponse {
	out := dto.UserResponse{
		ID:     s.UserID,
		Email:  s.Email,
		Locale: s.Locale,
		Orgs:   make([]dto.OrgMembershipResponse, 0, len(s.Orgs)),
	}
	if s.Name != "" {
		name := s.Name
		out.Name = &name
	}
	for _, m := range s.Orgs {
		out.Orgs = append(out.Orgs, toOrgMembershipResponse(m))
	}
	return out
}

func toOrgMembershipResponse(m entity.OrgMembership) dto.OrgMembershipResponse {
	return dto.OrgMembershipResponse{ID: m.OrganizationID, Name: m.OrganizationName, Role: m.Role.String()}
}

// Package authtest provee un almacén de credenciales en memoria para tests de auth y HTTP.
package authtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

var (
	_ repository.UserRepository         = (*Store)(nil)
	_ repository.OrganizationRepository = (*orgRepo)(nil)
	_ repository.MembershipRepository   = (*membershipRepo)(nil)
)

// Store almacén en memoria con la misma semántica que el adaptador PostgreSQL:
// email único, membresía única por (organización, usuario) y (nil, nil) cuando no hay fila.
type Store struct {
	mu          sync.Mutex
	users       map[string]entity.User
	orgs        map[string]entity.Organization
	memberships map[string]entity.Membership
	// Err, si no es nil, lo devuelven todas las lecturas (simula caída del almacén).
	Err error
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:       map[string]entity.User{},
		orgs:        map[string]entity.Organization{},
		memberships: map[string]entity.Membership{},
	}
}

// SeedUser inserta un usuario con password plano hasheado a costo mínimo y devuelve su id.
func (s *Store) SeedUser(email, plainPassword, name string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	u := entity.User{
		ID: uuid.New().String(), Email: email, PasswordHash: string(hash),
		Name: name, Locale: "en", CreatedAt: now, UpdatedAt: now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return u.ID
}

// SeedOrg inserta una organización y devuelve su id.
func (s *Store) SeedOrg(name string) string {
	now := time.Now().UTC()
	o := entity.Organization{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs[o.ID] = o
	return o.ID
}

// SetRole crea o actualiza la membresía del usuario en la organización.
func (s *Store) SetRole(userID, orgID string, role entity.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, m := range s.memberships {
		if m.UserID == userID && m.OrganizationID == orgID {
			m.Role = role
			s.memberships[id] = m
			return
		}
	}
	id := uuid.New().String()
	s.memberships[id] = entity.Membership{ID: id, OrganizationID: orgID, UserID: userID, Role: role, CreatedAt: time.Now().UTC()}
}

// RemoveMembership elimina la membresía del usuario en la organización.
func (s *Store) RemoveMembership(userID, orgID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, m := range s.memberships {
		if m.UserID == userID && m.OrganizationID == orgID {
			delete(s.memberships, id)
		}
	}
}

// DeleteUser elimina el usuario y, en cascada, sus membresías.
func (s *Store) DeleteUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	for id, m := range s.memberships {
		if m.UserID == userID {
			delete(s.memberships, id)
		}
	}
}

// Counts devuelve cuántos usuarios, organizaciones y membresías hay.
func (s *Store) Counts() (users, orgs, memberships int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.orgs), len(s.memberships)
}

// Create implementa repository.UserRepository.
func (s *Store) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	s.users[user.ID] = *user
	return nil
}

// GetByEmail implementa repository.UserRepository.
func (s *Store) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetAccountByID implementa repository.UserRepository.
func (s *Store) GetAccountByID(_ context.Context, id string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return s.accountLocked(u), nil
}

// GetAccountByEmail implementa repository.UserRepository.
func (s *Store) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.users {
		if u.Email == email {
			return s.accountLocked(u), nil
		}
	}
	return nil, nil
}

func (s *Store) accountLocked(u entity.User) *entity.Account {
	acc := &entity.Account{User: u, Memberships: []entity.OrgMembership{}}
	for _, m := range s.memberships {
		if m.UserID != u.ID {
			continue
		}
		acc.Memberships = append(acc.Memberships, entity.OrgMembership{
			OrganizationID:   m.OrganizationID,
			OrganizationName: s.orgs[m.OrganizationID].Name,
			Role:             m.Role,
		})
	}
	sort.Slice(acc.Memberships, func(i, j int) bool {
		return acc.Memberships[i].OrganizationName < acc.Memberships[j].OrganizationName
	})
	return acc
}

// RunRegistration implementa auth.RegistrationTxRunner: si fn falla restaura el estado previo.
func (s *Store) RunRegistration(_ context.Context, fn func(
	users repository.UserRepository,
	orgs repository.OrganizationRepository,
	memberships repository.MembershipRepository,
) error) error {
	s.mu.Lock()
	users, orgs, mems := cloneMap(s.users), cloneMap(s.orgs), cloneMap(s.memberships)
	s.mu.Unlock()

	if err := fn(s, &orgRepo{s}, &membershipRepo{s}); err != nil {
		s.mu.Lock()
		s.users, s.orgs, s.memberships = users, orgs, mems
		s.mu.Unlock()
		return err
	}
	return nil
}

// Organizations devuelve el repositorio de organizaciones respaldado por el almacén.
func (s *Store) Organizations() repository.OrganizationRepository { return &orgRepo{s} }

// Memberships devuelve el repositorio de membresías respaldado por el almacén.
func (s *Store) Memberships() repository.MembershipRepository { return &membershipRepo{s} }

type orgRepo struct{ s *Store }

func (r *orgRepo) Create(_ context.Context, org *entity.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orgs[org.ID] = *org
	return nil
}

func (r *orgRepo) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	o, ok := r.s.orgs[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

type membershipRepo struct{ s *Store }

func (r *membershipRepo) Create(_ context.Context, m *entity.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[m.UserID]; !ok {
		return domain.ErrInvalidInput
	}
	if _, ok := r.s.orgs[m.OrganizationID]; !ok {
		return domain.ErrInvalidInput
	}
	for _, existing := range r.s.memberships {
		if existing.UserID == m.UserID && existing.OrganizationID == m.OrganizationID {
			return domain.ErrConflict
		}
	}
	r.s.memberships[m.ID] = *m
	return nil
}

func (r *membershipRepo) ListByOrganization(_ context.Context, orgID string) ([]*entity.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Membership
	for _, m := range r.s.memberships {
		if m.OrganizationID == orgID {
			cp := m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func cloneMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

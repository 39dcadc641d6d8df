package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios (pool o tx).
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, locale, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, nullString(user.Name), user.Locale,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, locale, created_at, updated_at
		FROM users WHERE email = $1`
	var (
		u    entity.User
		name *string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &name, &u.Locale, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	u.Name = derefString(name)
	return &u, nil
}

// accountQuery lee el usuario y sus membresías en una sola consulta; un usuario sin
// membresías devuelve una fila con columnas de organización NULL.
const accountQuery = `
	SELECT u.id, u.email, u.password_hash, u.name, u.locale, u.created_at, u.updated_at,
	       o.id, o.name, m.role
	FROM users u
	LEFT JOIN memberships m ON m.user_id = u.id
	LEFT JOIN organizations o ON o.id = m.organization_id
	WHERE %s
	ORDER BY o.name, o.id`

// GetAccountByID obtiene el usuario con todas sus membresías.
func (r *UserRepo) GetAccountByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.getAccount(ctx, "u.id = $1", id)
}

// GetAccountByEmail obtiene el usuario con todas sus membresías.
func (r *UserRepo) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.getAccount(ctx, "u.email = $1", email)
}

func (r *UserRepo) getAccount(ctx context.Context, where string, arg string) (*entity.Account, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(accountQuery, where), arg)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	defer rows.Close()

	var acc *entity.Account
	for rows.Next() {
		var (
			u              entity.User
			name           *string
			orgID, orgName *string
			role           *string
		)
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &name, &u.Locale, &u.CreatedAt, &u.UpdatedAt,
			&orgID, &orgName, &role,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		if acc == nil {
			u.Name = derefString(name)
			acc = &entity.Account{User: u, Memberships: []entity.OrgMembership{}}
		}
		if orgID != nil {
			acc.Memberships = append(acc.Memberships, entity.OrgMembership{
				OrganizationID:   *orgID,
				OrganizationName: derefString(orgName),
				Role:             entity.Role(derefString(role)),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

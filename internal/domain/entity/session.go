package entity

// AuthSession vista derivada (no persistida) del usuario autenticado.
// Se construye en cada petición para que los cambios de rol apliquen de inmediato.
type AuthSession struct {
	UserID string
	Email  string
	Name   string
	Locale string
	Orgs   []OrgMembership
}

// NewAuthSession construye la sesión a partir de una cuenta.
func NewAuthSession(a *Account) *AuthSession {
	if a == nil {
		return nil
	}
	orgs := make([]OrgMembership, len(a.Memberships))
	copy(orgs, a.Memberships)
	return &AuthSession{
		UserID: a.User.ID,
		Email:  a.User.Email,
		Name:   a.User.Name,
		Locale: a.User.Locale,
		Orgs:   orgs,
	}
}

// Membership busca la membresía con el identificador exacto de organización.
func (s *AuthSession) Membership(orgID string) (OrgMembership, bool) {
	if s == nil {
		return OrgMembership{}, false
	}
	for _, m := range s.Orgs {
		if m.OrganizationID == orgID {
			return m, true
		}
	}
	return OrgMembership{}, false
}

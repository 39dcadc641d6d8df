package entity

import "time"

// Membership vincula un User con una Organization con un rol. Única por (organización, usuario).
type Membership struct {
	ID             string
	OrganizationID string
	UserID         string
	Role           Role
	CreatedAt      time.Time
}

// OrgMembership vista desnormalizada de una membresía: organización y rol del usuario en ella.
type OrgMembership struct {
	OrganizationID   string
	OrganizationName string
	Role             Role
}

// Account usuario junto con todas sus membresías, leído en una sola consulta.
type Account struct {
	User        User
	Memberships []OrgMembership
}

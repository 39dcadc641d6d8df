package dto

import "time"

// RegisterRequest entrada para registro: crea usuario, organización y membresía OWNER.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	OrgName  string `json:"orgName" validate:"required,min=2,max=200"`
	Locale   string `json:"locale" validate:"omitempty,oneof=en es"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// OrgMembershipResponse organización a la que pertenece el usuario y su rol en ella.
type OrgMembershipResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID     string                  `json:"id"`
	Email  string                  `json:"email"`
	Name   *string                 `json:"name"`
	Locale string                  `json:"locale"`
	Orgs   []OrgMembershipResponse `json:"orgs"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	User UserResponse          `json:"user"`
	Org  OrgMembershipResponse `json:"org"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse salida de /auth/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// OrganizationResponse organización activa de la petición con el rol del usuario.
type OrganizationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// MemberResponse membresía de un usuario dentro de la organización activa.
type MemberResponse struct {
	UserID   string    `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// MemberListResponse miembros de la organización.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
}

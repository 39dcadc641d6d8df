package entity

import "time"

// User representa una cuenta con credenciales. Puede pertenecer a varias organizaciones.
type User struct {
	ID           string
	Email        string // único, almacenado en minúsculas
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string // opcional
	Locale       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import "time"

// Employee trabajador de campo de una organización (puede no tener cuenta de usuario).
type Employee struct {
	ID             string
	OrganizationID string
	FirstName      string
	LastName       string
	JobTitle       string
	Phone          string
	Email          string
	HiredAt        *time.Time // nil = sin fecha registrada
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName nombre para reportes.
func (e *Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

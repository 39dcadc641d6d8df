package entity

import "time"

// Organization representa un tenant (empresa de techado) del sistema.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// CertificationStatus estado derivado de una certificación en una fecha dada.
type CertificationStatus string

const (
	CertificationValid    CertificationStatus = "VALID"
	CertificationExpiring CertificationStatus = "EXPIRING"
	CertificationExpired  CertificationStatus = "EXPIRED"
)

// Certification credencial de seguridad de un empleado (OSHA 10, protección contra caídas, etc.).
type Certification struct {
	ID             string
	OrganizationID string
	EmployeeID     string
	TemplateID     string // "" si se registró sin plantilla
	Name           string
	Issuer         string
	IssuedAt       time.Time
	ExpiresAt      *time.Time // nil = no vence
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StatusAt calcula el estado en now. Vence al terminar el día de ExpiresAt.
func (c *Certification) StatusAt(now time.Time, warning time.Duration) CertificationStatus {
	if c.ExpiresAt == nil {
		return CertificationValid
	}
	today := truncateDay(now)
	expires := truncateDay(*c.ExpiresAt)
	if expires.Before(today) {
		return CertificationExpired
	}
	if !expires.After(today.Add(warning)) {
		return CertificationExpiring
	}
	return CertificationValid
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CertificationTemplate tipo de certificación que la organización exige, con su vigencia.
type CertificationTemplate struct {
	ID             string
	OrganizationID string
	Name           string
	ValidDays      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ExpiresFrom fecha de vencimiento de una certificación emitida en issuedAt.
func (t *CertificationTemplate) ExpiresFrom(issuedAt time.Time) time.Time {
	return issuedAt.AddDate(0, 0, t.ValidDays)
}

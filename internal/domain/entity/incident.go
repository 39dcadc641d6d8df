package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncidentSeverity clasificación del incidente según su desenlace.
type IncidentSeverity string

const (
	SeverityNearMiss   IncidentSeverity = "NEAR_MISS"
	SeverityFirstAid   IncidentSeverity = "FIRST_AID"
	SeverityRecordable IncidentSeverity = "RECORDABLE"
	SeverityLostTime   IncidentSeverity = "LOST_TIME"
	SeverityFatality   IncidentSeverity = "FATALITY"
)

// Valid informa si s es una severidad conocida.
func (s IncidentSeverity) Valid() bool {
	switch s {
	case SeverityNearMiss, SeverityFirstAid, SeverityRecordable, SeverityLostTime, SeverityFatality:
		return true
	}
	return false
}

// Recordable informa si el incidente debe figurar en el registro OSHA 300.
func (s IncidentSeverity) Recordable() bool {
	return s == SeverityRecordable || s == SeverityLostTime || s == SeverityFatality
}

// IncidentStatus estado del seguimiento de un incidente.
type IncidentStatus string

const (
	IncidentOpen          IncidentStatus = "OPEN"
	IncidentInvestigating IncidentStatus = "INVESTIGATING"
	IncidentClosed        IncidentStatus = "CLOSED"
)

// Transiciones permitidas; CLOSED solo puede reabrirse a investigación.
var incidentTransitions = map[IncidentStatus][]IncidentStatus{
	IncidentOpen:          {IncidentInvestigating, IncidentClosed},
	IncidentInvestigating: {IncidentOpen, IncidentClosed},
	IncidentClosed:        {IncidentInvestigating},
}

// Valid informa si s es un estado conocido.
func (s IncidentStatus) Valid() bool {
	_, ok := incidentTransitions[s]
	return ok
}

// CanTransitionTo informa si el cambio de s a next está permitido.
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	for _, allowed := range incidentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Incident reporte de incidente o casi-accidente en obra.
type Incident struct {
	ID             string
	OrganizationID string
	ReportedBy     string // user id
	EmployeeID     string // opcional
	OccurredAt     time.Time
	Location       string
	Description    string
	Severity       IncidentSeverity
	Status         IncidentStatus
	DaysAway       int
	DaysRestricted int
	EstimatedCost  decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OSHALogEntry fila del registro OSHA 300: incidente más datos del empleado afectado.
type OSHALogEntry struct {
	Incident     Incident
	EmployeeName string
	JobTitle     string
}

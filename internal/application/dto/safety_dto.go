package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado. Fechas en formato YYYY-MM-DD.
type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	JobTitle  string `json:"jobTitle" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=40"`
	Email     string `json:"email" validate:"omitempty,email"`
	HiredAt   string `json:"hiredAt" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado (campos opcionales).
type UpdateEmployeeRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	JobTitle  *string `json:"jobTitle" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=40"`
	Email     *string `json:"email" validate:"omitempty,email"`
	HiredAt   *string `json:"hiredAt" validate:"omitempty,datetime=2006-01-02"`
	Active    *bool   `json:"active"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"orgId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	JobTitle  string    `json:"jobTitle"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	HiredAt   *string   `json:"hiredAt"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateCertificationRequest entrada para registrar una certificación.
// Con templateId, name toma el de la plantilla si viene vacío y expiresAt se calcula
// con la vigencia de la plantilla salvo que venga explícito.
type CreateCertificationRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,uuid"`
	TemplateID string `json:"templateId" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"omitempty,min=2,max=150"`
	Issuer     string `json:"issuer" validate:"omitempty,max=150"`
	IssuedAt   string `json:"issuedAt" validate:"required,datetime=2006-01-02"`
	ExpiresAt  string `json:"expiresAt" validate:"omitempty,datetime=2006-01-02"`
}

// CertificationResponse salida de una certificación con su estado calculado.
type CertificationResponse struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"orgId"`
	EmployeeID string    `json:"employeeId"`
	TemplateID *string   `json:"templateId"`
	Name       string    `json:"name"`
	Issuer     string    `json:"issuer"`
	IssuedAt   string    `json:"issuedAt"`
	ExpiresAt  *string   `json:"expiresAt"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CertificationListResponse lista de certificaciones.
type CertificationListResponse struct {
	Items []CertificationResponse `json:"items"`
}

// CreateCertificationTemplateRequest entrada para definir un tipo de certificación.
type CreateCertificationTemplateRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=150"`
	ValidDays int    `json:"validDays" validate:"required,min=1,max=3650"`
}

// CertificationTemplateResponse salida de una plantilla.
type CertificationTemplateResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"orgId"`
	Name      string    `json:"name"`
	ValidDays int       `json:"validDays"`
	CreatedAt time.Time `json:"createdAt"`
}

// CertificationTemplateListResponse lista de plantillas.
type CertificationTemplateListResponse struct {
	Items []CertificationTemplateResponse `json:"items"`
}

// CreateIncidentRequest reporte de un incidente.
type CreateIncidentRequest struct {
	EmployeeID     string    `json:"employeeId" validate:"omitempty,uuid"`
	OccurredAt     time.Time `json:"occurredAt" validate:"required"`
	Location       string    `json:"location" validate:"required,min=2,max=200"`
	Description    string    `json:"description" validate:"required,min=5,max=4000"`
	Severity       string    `json:"severity" validate:"required,oneof=NEAR_MISS FIRST_AID RECORDABLE LOST_TIME FATALITY"`
	DaysAway       int       `json:"daysAway" validate:"min=0,max=366"`
	DaysRestricted int       `json:"daysRestricted" validate:"min=0,max=366"`
	EstimatedCost  string    `json:"estimatedCost" validate:"omitempty,numeric"`
}

// UpdateIncidentStatusRequest cambio de estado de un incidente.
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN INVESTIGATING CLOSED"`
}

// IncidentResponse salida de un incidente.
type IncidentResponse struct {
	ID             string    `json:"id"`
	OrgID          string    `json:"orgId"`
	ReportedBy     string    `json:"reportedBy"`
	EmployeeID     *string   `json:"employeeId"`
	OccurredAt     time.Time `json:"occurredAt"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Severity       string    `json:"severity"`
	Status         string    `json:"status"`
	DaysAway       int       `json:"daysAway"`
	DaysRestricted int       `json:"daysRestricted"`
	EstimatedCost  string    `json:"estimatedCost"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// IncidentListResponse lista paginada de incidentes.
type IncidentListResponse struct {
	Items []IncidentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

package safety

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/roofguard-api/internal/domain"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
	"github.com/jhoicas/roofguard-api/internal/domain/repository"
)

// OSHALogUseCase arma el registro anual OSHA 300 de lesiones registrables.
type OSHALogUseCase struct {
	incidents repository.IncidentRepository
	generator OSHALogGenerator
}

// NewOSHALogUseCase construye el caso de uso.
func NewOSHALogUseCase(incidents repository.IncidentRepository, generator OSHALogGenerator) *OSHALogUseCase {
	return &OSHALogUseCase{incidents: incidents, generator: generator}
}

// Entries devuelve solo los incidentes registrables del año, ordenados por fecha.
func (uc *OSHALogUseCase) Entries(ctx context.Context, orgID string, year int) ([]entity.OSHALogEntry, error) {
	if year < 1971 || year > 9999 {
		return nil, fmt.Errorf("%w: año %d fuera de rango", domain.ErrInvalidInput, year)
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	all, err := uc.incidents.ListForOSHALog(ctx, orgID, from, from.AddDate(1, 0, 0))
	if err != nil {
		return nil, fmt.Errorf("osha 300: listar incidentes: %w", err)
	}
	out := make([]entity.OSHALogEntry, 0, len(all))
	for _, e := range all {
		if e.Incident.Severity.Recordable() {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Incident.OccurredAt.Before(out[j].Incident.OccurredAt)
	})
	return out, nil
}

// DownloadPDF genera el PDF y su nombre de archivo.
func (uc *OSHALogUseCase) DownloadPDF(ctx context.Context, orgID, orgName string, year int) ([]byte, string, error) {
	entries, err := uc.Entries(ctx, orgID, year)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateOSHALog(ctx, OSHALogHeader{OrganizationName: orgName, Year: year}, entries)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("osha300-%d.pdf", year), nil
}

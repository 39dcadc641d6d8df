package safety

import (
	"context"

	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

// OSHALogHeader datos del establecimiento que encabezan el registro OSHA 300.
type OSHALogHeader struct {
	OrganizationName string
	Year             int
}

// OSHALogGenerator genera el PDF del registro OSHA 300.
type OSHALogGenerator interface {
	GenerateOSHALog(ctx context.Context, header OSHALogHeader, entries []entity.OSHALogEntry) ([]byte, error)
}

const dateLayout = "2006-01-02"

package ports

import (
	"context"

	"github.com/jhoicas/consola-admin/internal/application/dto"
)

// RosterPDFGenerator genera la representación impresa de un listado.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, roster dto.Roster) ([]byte, error)
}

package repository

import (
	"context"

	"github.com/maxikash/condonaciones-api/internal/domain"
)

// CondonacionRepository defines the interface for condonación data operations
type CondonacionRepository interface {
	// GetDatosGenerales retrieves the snapshot row for a credit.
	// Returns sql.ErrNoRows when the credit is not in the reporting table;
	// that lookup is the single authoritative existence check.
	GetDatosGenerales(ctx context.Context, idCredito int64) (*domain.DatosGenerales, error)

	// ListGastos retrieves the collection-expense rows for a credit under the
	// given filter, ordered by periodo_inicio ascending. An empty slice is a
	// valid result.
	ListGastos(ctx context.Context, idCredito int64, filtro domain.FiltroGastos) ([]*domain.GastoCobranza, error)

	// GetResumen computes the aggregate totals for a credit in one pass
	GetResumen(ctx context.Context, idCredito int64) (*domain.ResumenGastos, error)
}

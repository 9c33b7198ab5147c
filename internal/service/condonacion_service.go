package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maxikash/condonaciones-api/internal/domain"
	"github.com/maxikash/condonaciones-api/internal/integrations/estadocuenta"
	"github.com/maxikash/condonaciones-api/internal/repository"

	customError "github.com/maxikash/condonaciones-api/pkg/errors"
)

// CondonacionService exposes the report operations over the reporting store
// and the external account-statement service.
type CondonacionService interface {
	// Detalle returns the snapshot row plus the expense rows under the filter
	Detalle(ctx context.Context, idCredito int64, filtro domain.FiltroGastos) (*domain.ReporteDetalle, error)

	// General returns every expense row with its derived status and counts
	General(ctx context.Context, idCredito int64) (*domain.ReporteGeneral, error)

	// ResumenSimple returns the SQL-only aggregate summary
	ResumenSimple(ctx context.Context, idCredito int64) (*domain.ResumenGastos, error)

	// ResumenPago blends the SQL aggregate with the external statement
	ResumenPago(ctx context.Context, idCredito int64) (*domain.ResumenPago, error)
}

type condonacionService struct {
	repo         repository.CondonacionRepository
	estadoCuenta estadocuenta.Client
	log          *logrus.Logger
	now          func() time.Time
}

func NewCondonacionService(
	repo repository.CondonacionRepository,
	estadoCuenta estadocuenta.Client,
	log *logrus.Logger,
) CondonacionService {
	return &condonacionService{
		repo:         repo,
		estadoCuenta: estadoCuenta,
		log:          log,
		now:          time.Now,
	}
}

// datosGenerales runs the authoritative existence check: a credit missing
// from the snapshot table is NOT_FOUND no matter what gastos_cobranza holds.
func (s *condonacionService) datosGenerales(ctx context.Context, idCredito int64) (*domain.DatosGenerales, error) {
	datos, err := s.repo.GetDatosGenerales(ctx, idCredito)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customError.WrapCreditoNoEncontrado(idCredito)
		}
		return nil, customError.WrapDatabaseError(err)
	}
	return datos, nil
}

func (s *condonacionService) Detalle(ctx context.Context, idCredito int64, filtro domain.FiltroGastos) (*domain.ReporteDetalle, error) {
	datos, err := s.datosGenerales(ctx, idCredito)
	if err != nil {
		return nil, err
	}

	gastos, err := s.repo.ListGastos(ctx, idCredito, filtro)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return &domain.ReporteDetalle{
		DatosGenerales: datos,
		Gastos:         gastos,
	}, nil
}

func (s *condonacionService) General(ctx context.Context, idCredito int64) (*domain.ReporteGeneral, error) {
	datos, err := s.datosGenerales(ctx, idCredito)
	if err != nil {
		return nil, err
	}

	gastos, err := s.repo.ListGastos(ctx, idCredito, domain.FiltroTodos)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	condonados := 0
	for _, gasto := range gastos {
		if gasto.Condonado.Condonado() {
			condonados++
		}
	}

	return &domain.ReporteGeneral{
		DatosGenerales: datos,
		Resumen: domain.ResumenGeneral{
			TotalRegistros: len(gastos),
			Condonados:     condonados,
			Pendientes:     len(gastos) - condonados,
		},
		Gastos: gastos,
	}, nil
}

func (s *condonacionService) ResumenSimple(ctx context.Context, idCredito int64) (*domain.ResumenGastos, error) {
	if _, err := s.datosGenerales(ctx, idCredito); err != nil {
		return nil, err
	}

	resumen, err := s.repo.GetResumen(ctx, idCredito)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return resumen, nil
}

func (s *condonacionService) ResumenPago(ctx context.Context, idCredito int64) (*domain.ResumenPago, error) {
	if _, err := s.datosGenerales(ctx, idCredito); err != nil {
		return nil, err
	}

	resumen, err := s.repo.GetResumen(ctx, idCredito)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	// Cutoff date is always "today" at call time; callers cannot pick it
	fechaCorte := s.now()
	saldos, err := s.estadoCuenta.ConsultarSaldos(ctx, idCredito, fechaCorte)
	if err != nil {
		s.log.WithError(err).WithField("id_credito", idCredito).Warn("consulta de estado de cuenta falló")
		return nil, err
	}

	// total_a_pagar adds the all-rows monetary sum (forgiven included) to the
	// overdue balance, and cargo_pago_tardio carries that same sum. Kept
	// bug-for-bug compatible with the contract the collections desk consumes.
	totalAPagar := resumen.MontoTotal.Add(saldos.SaldoTotalVencido).Round(2)

	return &domain.ResumenPago{
		IDCredito:              idCredito,
		CargoPagoTardio:        resumen.MontoTotal,
		TotalCargosPagosTardio: resumen.Pendientes,
		SaldoVencidoCredito:    saldos.SaldoTotalVencido,
		NumeroCuotasCredito:    saldos.CuotasPendientes(),
		TotalAPagar:            totalAPagar,
	}, nil
}

package repository

import (
	"context"

	"github.com/maxikash/condonaciones-api/internal/domain"

	"github.com/jmoiron/sqlx"
)

type condonacionRepository struct {
	db *sqlx.DB
}

func NewCondonacionRepository(db *sqlx.DB) CondonacionRepository {
	return &condonacionRepository{db: db}
}

func (r *condonacionRepository) GetDatosGenerales(ctx context.Context, idCredito int64) (*domain.DatosGenerales, error) {
	query := `
		SELECT
			Id_credito                            AS id_credito,
			Nombre_cliente                        AS nombre_cliente,
			Id_cliente                            AS id_cliente,
			Domicilio_Completo                    AS domicilio_completo,
			Bucket_Morosidad_Real                 AS bucket_morosidad,
			Dias_mora                             AS dias_mora,
			COALESCE(saldo_vencido_inicio, 0)     AS saldo_vencido
		FROM tbl_segundometro_semana
		WHERE Id_credito = ?
		LIMIT 1
	`

	var datos domain.DatosGenerales
	err := r.db.GetContext(ctx, &datos, query, idCredito)
	if err != nil {
		return nil, err
	}

	return &datos, nil
}

func (r *condonacionRepository) ListGastos(ctx context.Context, idCredito int64, filtro domain.FiltroGastos) ([]*domain.GastoCobranza, error) {
	// Dates leave the database already in wire format so NULLs stay NULL
	// without another formatting pass in Go.
	query := `
		SELECT
			DATE_FORMAT(periodo_inicio, '%Y-%m-%d')              AS periodoinicio,
			DATE_FORMAT(periodo_fin, '%Y-%m-%d')                 AS periodofin,
			SEMANA                                               AS semana,
			parcialidad                                          AS parcialidad,
			COALESCE(monto_valor, 0)                             AS monto_valor,
			COALESCE(cuota, 0)                                   AS cuota,
			condonado                                            AS condonado,
			DATE_FORMAT(fecha_condonacion, '%Y-%m-%d %H:%i:%s')  AS fecha_condonacion,
			CASE WHEN condonado = 1 THEN 'CONDONADO' ELSE 'PENDIENTE' END AS status
		FROM gastos_cobranza
		WHERE Id_credito = ?
	`

	switch filtro {
	case domain.FiltroCondonados:
		query += ` AND condonado = 1`
	case domain.FiltroPendientes:
		query += ` AND (condonado IS NULL OR condonado = 0)`
	}

	query += ` ORDER BY periodo_inicio ASC`

	gastos := []*domain.GastoCobranza{}
	err := r.db.SelectContext(ctx, &gastos, query, idCredito)
	if err != nil {
		return nil, err
	}

	// Only the general report exposes the derived status column
	if filtro != domain.FiltroTodos {
		for _, g := range gastos {
			g.Status = ""
		}
	}

	return gastos, nil
}

func (r *condonacionRepository) GetResumen(ctx context.Context, idCredito int64) (*domain.ResumenGastos, error) {
	// SUM over an empty set yields NULL, so every aggregate is coalesced
	query := `
		SELECT
			COUNT(*)                                                   AS total_parcialidades,
			COALESCE(SUM(monto_valor), 0)                              AS monto_total,
			COALESCE(SUM(CASE WHEN condonado = 1 THEN 1 ELSE 0 END), 0) AS condonados,
			COALESCE(SUM(CASE WHEN condonado != 1 OR condonado IS NULL
			              THEN 1 ELSE 0 END), 0)                       AS pendientes
		FROM gastos_cobranza
		WHERE Id_credito = ?
	`

	var resumen domain.ResumenGastos
	err := r.db.GetContext(ctx, &resumen, query, idCredito)
	if err != nil {
		return nil, err
	}

	return &resumen, nil
}

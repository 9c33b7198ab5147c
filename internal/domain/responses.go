package domain

import (
	"github.com/shopspring/decimal"

	"github.com/maxikash/condonaciones-api/pkg/response"
)

// DTOs for the report endpoints. Field names follow the reporting contract
// consumed by the collections desk, so they stay in Spanish snake_case.

// CondonacionCobranza wraps the detail rows of the filtered reports.
type CondonacionCobranza struct {
	Detalle []*GastoCobranza `json:"detalle"`
}

// CondonacionResponse is the shape of the forgiven-only and pending-only
// reports.
type CondonacionResponse struct {
	response.Base
	DatosGenerales      *DatosGenerales     `json:"datos_generales"`
	CondonacionCobranza CondonacionCobranza `json:"condonacion_cobranza"`
}

// ResumenGeneral summarizes the row counts of the general report.
type ResumenGeneral struct {
	TotalRegistros int `json:"total_registros"`
	Condonados     int `json:"condonados"`
	Pendientes     int `json:"pendientes"`
}

// GeneralResponse is the full report: every row with its status plus counts.
type GeneralResponse struct {
	response.Base
	DatosGenerales *DatosGenerales  `json:"datos_generales"`
	Resumen        ResumenGeneral   `json:"resumen"`
	Detalle        []*GastoCobranza `json:"detalle"`
}

// ResumenSimpleResponse is the SQL-only aggregate summary.
type ResumenSimpleResponse struct {
	response.Base
	IDCredito          int64   `json:"id_credito"`
	TotalParcialidades int     `json:"total_parcialidades"`
	MontoTotal         float64 `json:"monto_total"`
	Condonados         int     `json:"condonados"`
	Pendientes         int     `json:"pendientes"`
}

// ResumenPagoResponse blends the SQL aggregate with the external account
// statement. cargo_pago_tardio and total_a_pagar carry the all-rows monetary
// sum (forgiven included), reproducing the established contract.
type ResumenPagoResponse struct {
	response.Base
	IDCredito              int64   `json:"id_credito"`
	CargoPagoTardio        float64 `json:"cargo_pago_tardio"`
	TotalCargosPagosTardio int     `json:"total_cargos_pagos_tardio"`
	SaldoVencidoCredito    float64 `json:"saldo_vencido_credito"`
	NumeroCuotasCredito    int     `json:"numero_cuotas_credito"`
	TotalAPagar            float64 `json:"total_a_pagar"`
}

// Intermediate results handed from the service to the handlers, which add
// the envelope and count messages.

// ReporteDetalle is the filtered detail report data.
type ReporteDetalle struct {
	DatosGenerales *DatosGenerales
	Gastos         []*GastoCobranza
}

// ReporteGeneral is the unfiltered report data with per-row status and counts.
type ReporteGeneral struct {
	DatosGenerales *DatosGenerales
	Resumen        ResumenGeneral
	Gastos         []*GastoCobranza
}

// ResumenPago is the blended summary before envelope assembly
type ResumenPago struct {
	IDCredito              int64
	CargoPagoTardio        decimal.Decimal
	TotalCargosPagosTardio int
	SaldoVencidoCredito    decimal.Decimal
	NumeroCuotasCredito    int
	TotalAPagar            decimal.Decimal
}

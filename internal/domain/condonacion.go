package domain

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Row status labels derived from the condonado flag
const (
	StatusCondonado = "CONDONADO"
	StatusPendiente = "PENDIENTE"
)

// EstadoCondonacion is the tri-state forgiveness flag of an expense row.
// The column holds NULL (never reviewed), 0 (reviewed, not forgiven) or 1
// (forgiven); anything that is not 1 counts as pending.
type EstadoCondonacion int8

const (
	EstadoSinMarcar EstadoCondonacion = iota // column NULL
	EstadoPendiente                          // column 0
	EstadoCondonado                          // column 1
)

// Condonado reports whether the expense was forgiven.
func (e EstadoCondonacion) Condonado() bool {
	return e == EstadoCondonado
}

// Status returns the display label used by the general report.
func (e EstadoCondonacion) Status() string {
	if e.Condonado() {
		return StatusCondonado
	}
	return StatusPendiente
}

// Scan implements sql.Scanner for the nullable tinyint column.
func (e *EstadoCondonacion) Scan(src interface{}) error {
	if src == nil {
		*e = EstadoSinMarcar
		return nil
	}

	var v int64
	switch s := src.(type) {
	case int64:
		v = s
	case []byte:
		if _, err := fmt.Sscanf(string(s), "%d", &v); err != nil {
			return fmt.Errorf("condonado: cannot scan %q: %w", s, err)
		}
	default:
		return fmt.Errorf("condonado: unsupported scan type %T", src)
	}

	if v == 1 {
		*e = EstadoCondonado
	} else {
		*e = EstadoPendiente
	}
	return nil
}

// MarshalJSON preserves the raw column values on the wire: 1, 0 or null.
func (e EstadoCondonacion) MarshalJSON() ([]byte, error) {
	switch e {
	case EstadoCondonado:
		return []byte("1"), nil
	case EstadoPendiente:
		return []byte("0"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts the same wire values.
func (e *EstadoCondonacion) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*e = EstadoSinMarcar
	case bytes.Equal(data, []byte("1")):
		*e = EstadoCondonado
	case bytes.Equal(data, []byte("0")):
		*e = EstadoPendiente
	default:
		return fmt.Errorf("condonado: invalid value %s", data)
	}
	return nil
}

// FiltroGastos selects which expense rows a detail query returns.
type FiltroGastos int

const (
	FiltroTodos      FiltroGastos = iota // every row, with derived status
	FiltroCondonados                     // condonado = 1
	FiltroPendientes                     // condonado IS NULL OR condonado = 0
)

// DatosGenerales is the cardholder/loan snapshot for one credit, sourced
// from the weekly reporting table.
type DatosGenerales struct {
	IDCredito         int64   `json:"id_credito" db:"id_credito"`
	NombreCliente     string  `json:"nombre_cliente" db:"nombre_cliente"`
	IDCliente         int64   `json:"id_cliente" db:"id_cliente"`
	DomicilioCompleto string  `json:"domicilio_completo" db:"domicilio_completo"`
	BucketMorosidad   string  `json:"bucket_morosidad" db:"bucket_morosidad"`
	DiasMora          int     `json:"dias_mora" db:"dias_mora"`
	SaldoVencido      float64 `json:"saldo_vencido" db:"saldo_vencido"`
}

// GastoCobranza is one collection-expense row of a credit, one per billing
// period. Dates arrive pre-formatted from the query; pointers stay nil for
// NULL columns so the wire shows null, as the reporting consumers expect.
type GastoCobranza struct {
	PeriodoInicio    *string           `json:"periodoinicio" db:"periodoinicio"`
	PeriodoFin       *string           `json:"periodofin" db:"periodofin"`
	Semana           int               `json:"semana" db:"semana"`
	Parcialidad      string            `json:"parcialidad" db:"parcialidad"`
	MontoValor       float64           `json:"monto_valor" db:"monto_valor"`
	Cuota            float64           `json:"cuota" db:"cuota"`
	Condonado        EstadoCondonacion `json:"condonado" db:"condonado"`
	FechaCondonacion *string           `json:"fecha_condonacion" db:"fecha_condonacion"`
	Status           string            `json:"status,omitempty" db:"status"`
}

// ResumenGastos is the single-pass SQL aggregate over gastos_cobranza for
// one credit. Invariant: Condonados + Pendientes == TotalParcialidades.
type ResumenGastos struct {
	TotalParcialidades int             `db:"total_parcialidades"`
	MontoTotal         decimal.Decimal `db:"monto_total"`
	Condonados         int             `db:"condonados"`
	Pendientes         int             `db:"pendientes"`
}

// SaldosCredito is the slice of the external account-statement response the
// service consumes. Fetched fresh per request, never persisted.
type SaldosCredito struct {
	SaldoTotalVencido decimal.Decimal
	CuotasDevengadas  int
	CuotasPagadas     int
}

// CuotasPendientes derives the installments still due. The upstream counters
// are passed through as-is, so a negative result is possible and not clamped.
func (s *SaldosCredito) CuotasPendientes() int {
	return s.CuotasDevengadas - s.CuotasPagadas
}

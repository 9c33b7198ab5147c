package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// FormatoFecha is the wire format for dates (periodo_inicio, fecha de corte).
	FormatoFecha = "2006-01-02"

	// FormatoFechaHora is the wire format for timestamps (fecha_condonacion).
	FormatoFechaHora = "2006-01-02 15:04:05"
)

// FormatFecha renders a date as YYYY-MM-DD.
func FormatFecha(t time.Time) string {
	return t.Format(FormatoFecha)
}

// FormatFechaHora renders a timestamp as YYYY-MM-DD HH:MM:SS.
func FormatFechaHora(t time.Time) string {
	return t.Format(FormatoFechaHora)
}

// ToMonto converts a decimal amount to the float64 the JSON contract uses,
// rounded to 2 decimal places.
func ToMonto(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

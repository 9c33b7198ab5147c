package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatFecha(t *testing.T) {
	fecha := time.Date(2025, 3, 7, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-03-07", FormatFecha(fecha))
}

func TestFormatFechaHora(t *testing.T) {
	fecha := time.Date(2025, 3, 7, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "2025-03-07 09:05:03", FormatFechaHora(fecha))
}

func TestToMonto(t *testing.T) {
	tests := []struct {
		name     string
		monto    decimal.Decimal
		expected float64
	}{
		{"entero", decimal.NewFromInt(450), 450.0},
		{"dos decimales", decimal.NewFromFloat(120.55), 120.55},
		{"redondeo hacia arriba", decimal.NewFromFloat(10.005), 10.01},
		{"redondeo hacia abajo", decimal.NewFromFloat(10.004), 10.0},
		{"cero", decimal.Zero, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMonto(tt.monto))
		})
	}
}

func TestDecimalFromString(t *testing.T) {
	d, err := DecimalFromString("1520.75")
	assert.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(1520.75)))

	_, err = DecimalFromString("no-numerico")
	assert.Error(t, err)
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstadoCondonacion_Scan(t *testing.T) {
	var estado EstadoCondonacion

	require.NoError(t, estado.Scan(nil))
	assert.Equal(t, EstadoSinMarcar, estado)
	assert.False(t, estado.Condonado())
	assert.Equal(t, StatusPendiente, estado.Status())

	require.NoError(t, estado.Scan(int64(0)))
	assert.Equal(t, EstadoPendiente, estado)
	assert.Equal(t, StatusPendiente, estado.Status())

	require.NoError(t, estado.Scan(int64(1)))
	assert.Equal(t, EstadoCondonado, estado)
	assert.True(t, estado.Condonado())
	assert.Equal(t, StatusCondonado, estado.Status())

	// MySQL drivers may hand tinyints over as raw bytes
	require.NoError(t, estado.Scan([]byte("1")))
	assert.Equal(t, EstadoCondonado, estado)

	assert.Error(t, estado.Scan("uno"))
}

func TestEstadoCondonacion_JSONConservaValoresCrudos(t *testing.T) {
	type fila struct {
		Condonado EstadoCondonacion `json:"condonado"`
	}

	tests := []struct {
		estado EstadoCondonacion
		wire   string
	}{
		{EstadoCondonado, `{"condonado":1}`},
		{EstadoPendiente, `{"condonado":0}`},
		{EstadoSinMarcar, `{"condonado":null}`},
	}

	for _, tt := range tests {
		data, err := json.Marshal(fila{Condonado: tt.estado})
		require.NoError(t, err)
		assert.Equal(t, tt.wire, string(data))

		var decoded fila
		require.NoError(t, json.Unmarshal([]byte(tt.wire), &decoded))
		assert.Equal(t, tt.estado, decoded.Condonado)
	}
}

func TestSaldosCredito_CuotasPendientes(t *testing.T) {
	saldos := &SaldosCredito{CuotasDevengadas: 12, CuotasPagadas: 5}
	assert.Equal(t, 7, saldos.CuotasPendientes())

	// upstream counters are passed through, never clamped
	saldos = &SaldosCredito{CuotasDevengadas: 3, CuotasPagadas: 5}
	assert.Equal(t, -2, saldos.CuotasPendientes())
}

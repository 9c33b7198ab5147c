package estadocuenta

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customError "github.com/maxikash/condonaciones-api/pkg/errors"
)

func newTestClient(url string, timeout time.Duration) *HTTPClient {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return &HTTPClient{
		url:    url,
		token:  "test-token",
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

var fechaCorte = time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

func TestConsultarSaldos_Exito(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-token", r.Header.Get("Token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1001), body["idCredito"])
		assert.Equal(t, "2025-03-17", body["fechaCorte"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"estadoCuenta": {
				"datosSaldos": {
					"saldoTotalVencido": 1520.75,
					"cuotasDevengadas": 12,
					"cuotasPagadas": 5
				}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	saldos, err := client.ConsultarSaldos(context.Background(), 1001, fechaCorte)

	require.NoError(t, err)
	assert.True(t, saldos.SaldoTotalVencido.Equal(decimal.NewFromFloat(1520.75)))
	assert.Equal(t, 12, saldos.CuotasDevengadas)
	assert.Equal(t, 5, saldos.CuotasPagadas)
	assert.Equal(t, 7, saldos.CuotasPendientes())
}

func TestConsultarSaldos_CamposAusentesValenCero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"estadoCuenta": {"datosSaldos": {"cuotasDevengadas": 3}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	saldos, err := client.ConsultarSaldos(context.Background(), 1001, fechaCorte)

	require.NoError(t, err)
	assert.True(t, saldos.SaldoTotalVencido.IsZero())
	assert.Equal(t, 3, saldos.CuotasDevengadas)
	assert.Equal(t, 0, saldos.CuotasPagadas)
}

func TestConsultarSaldos_EstatusNoExitoso(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.ConsultarSaldos(context.Background(), 1001, fechaCorte)

	var bizErr *customError.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, customError.ErrCodeExternalAPI, bizErr.Code)
	assert.Contains(t, bizErr.Message, "500")
}

func TestConsultarSaldos_SinDatosSaldos(t *testing.T) {
	bodies := []string{
		`{"estadoCuenta": {}}`,
		`{"estadoCuenta": {"datosSaldos": null}}`,
		`{"estadoCuenta": {"datosSaldos": {}}}`,
		`{}`,
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := newTestClient(server.URL, 5*time.Second)
		_, err := client.ConsultarSaldos(context.Background(), 1001, fechaCorte)
		server.Close()

		var bizErr *customError.BusinessError
		require.True(t, errors.As(err, &bizErr), "body %s should fail", body)
		assert.Equal(t, customError.ErrCodeExternalAPI, bizErr.Code)
		assert.Contains(t, bizErr.Message, "datosSaldos")
	}
}

func TestConsultarSaldos_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 50*time.Millisecond)
	_, err := client.ConsultarSaldos(context.Background(), 1001, fechaCorte)

	var bizErr *customError.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, customError.ErrCodeExternalAPI, bizErr.Code)
	assert.Contains(t, bizErr.Message, "Tiempo de espera")
}

func TestConsultarSaldos_ErrorDeConexion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := newTestClient(server.URL, 5*time.Second)
	_, err := client.ConsultarSaldos(context.Background(), 1001, fechaCorte)

	var bizErr *customError.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, customError.ErrCodeExternalAPI, bizErr.Code)
	assert.Contains(t, bizErr.Message, "No se pudo conectar")
}

// Package estadocuenta integrates with the s2movil account-statement service.
package estadocuenta

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/maxikash/condonaciones-api/internal/config"
	"github.com/maxikash/condonaciones-api/internal/domain"
	"github.com/maxikash/condonaciones-api/pkg/utils"

	apperrors "github.com/maxikash/condonaciones-api/pkg/errors"
)

// Client fetches the balance snapshot of a credit at a cutoff date.
// The service core depends on this interface so the aggregation logic is
// testable without network access.
type Client interface {
	ConsultarSaldos(ctx context.Context, idCredito int64, fechaCorte time.Time) (*domain.SaldosCredito, error)
}

// HTTPClient is the production implementation against the estadocuenta API
type HTTPClient struct {
	url    string
	token  string
	client *http.Client
	log    *logrus.Logger
}

// NewHTTPClient initializes a new estadocuenta client
func NewHTTPClient(cfg *config.Config, log *logrus.Logger) *HTTPClient {
	return &HTTPClient{
		url:   cfg.EstadoCuenta.URL,
		token: cfg.EstadoCuenta.Token,
		client: &http.Client{
			Timeout: cfg.EstadoCuenta.Timeout,
		},
		log: log,
	}
}

type consultaRequest struct {
	IDCredito  int64  `json:"idCredito"`
	FechaCorte string `json:"fechaCorte"`
}

type datosSaldos struct {
	SaldoTotalVencido decimal.Decimal `json:"saldoTotalVencido"`
	CuotasDevengadas  int             `json:"cuotasDevengadas"`
	CuotasPagadas     int             `json:"cuotasPagadas"`
}

type estadoCuentaResponse struct {
	EstadoCuenta struct {
		// Raw so that absent, null and {} are all distinguishable from a
		// populated object; the upstream omitting it is a contract violation,
		// not a zero-balance statement.
		DatosSaldos json.RawMessage `json:"datosSaldos"`
	} `json:"estadoCuenta"`
}

// ConsultarSaldos posts {idCredito, fechaCorte} and extracts
// estadoCuenta.datosSaldos from the response. Every failure mode maps to the
// EXTERNAL_API_ERROR code: timeout, non-2xx status, transport error, or a
// success body without datosSaldos.
func (c *HTTPClient) ConsultarSaldos(ctx context.Context, idCredito int64, fechaCorte time.Time) (*domain.SaldosCredito, error) {
	payload := consultaRequest{
		IDCredito:  idCredito,
		FechaCorte: utils.FormatFecha(fechaCorte),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.WrapExternalTransport(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.WrapExternalTransport(err)
	}

	req.Header.Set("Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.WithField("id_credito", idCredito).Warn("estadocuenta request timed out")
			return nil, apperrors.WrapExternalTimeout(err)
		}
		return nil, apperrors.WrapExternalTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		c.log.WithFields(logrus.Fields{
			"id_credito": idCredito,
			"status":     resp.StatusCode,
		}).Warn("estadocuenta returned non-success status")
		return nil, apperrors.WrapExternalStatus(resp.StatusCode)
	}

	var data estadoCuentaResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, apperrors.WrapExternalTransport(fmt.Errorf("respuesta inválida: %w", err))
	}

	raw := data.EstadoCuenta.DatosSaldos
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("{}")) {
		return nil, apperrors.WrapSinDatosSaldos()
	}

	var saldos datosSaldos
	if err := json.Unmarshal(raw, &saldos); err != nil {
		return nil, apperrors.WrapExternalTransport(fmt.Errorf("datosSaldos inválido: %w", err))
	}

	return &domain.SaldosCredito{
		SaldoTotalVencido: saldos.SaldoTotalVencido,
		CuotasDevengadas:  saldos.CuotasDevengadas,
		CuotasPagadas:     saldos.CuotasPagadas,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

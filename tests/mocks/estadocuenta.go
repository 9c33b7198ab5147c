package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/maxikash/condonaciones-api/internal/domain"
)

type MockEstadoCuentaClient struct {
	mock.Mock
}

func (m *MockEstadoCuentaClient) ConsultarSaldos(ctx context.Context, idCredito int64, fechaCorte time.Time) (*domain.SaldosCredito, error) {
	args := m.Called(ctx, idCredito, fechaCorte)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaldosCredito), args.Error(1)
}

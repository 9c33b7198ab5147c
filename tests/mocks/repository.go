package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/maxikash/condonaciones-api/internal/domain"
)

type MockCondonacionRepository struct {
	mock.Mock
}

func (m *MockCondonacionRepository) GetDatosGenerales(ctx context.Context, idCredito int64) (*domain.DatosGenerales, error) {
	args := m.Called(ctx, idCredito)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatosGenerales), args.Error(1)
}

func (m *MockCondonacionRepository) ListGastos(ctx context.Context, idCredito int64, filtro domain.FiltroGastos) ([]*domain.GastoCobranza, error) {
	args := m.Called(ctx, idCredito, filtro)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GastoCobranza), args.Error(1)
}

func (m *MockCondonacionRepository) GetResumen(ctx context.Context, idCredito int64) (*domain.ResumenGastos, error) {
	args := m.Called(ctx, idCredito)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumenGastos), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/maxikash/condonaciones-api/internal/domain"
)

type MockCondonacionService struct {
	mock.Mock
}

func (m *MockCondonacionService) Detalle(ctx context.Context, idCredito int64, filtro domain.FiltroGastos) (*domain.ReporteDetalle, error) {
	args := m.Called(ctx, idCredito, filtro)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReporteDetalle), args.Error(1)
}

func (m *MockCondonacionService) General(ctx context.Context, idCredito int64) (*domain.ReporteGeneral, error) {
	args := m.Called(ctx, idCredito)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReporteGeneral), args.Error(1)
}

func (m *MockCondonacionService) ResumenSimple(ctx context.Context, idCredito int64) (*domain.ResumenGastos, error) {
	args := m.Called(ctx, idCredito)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumenGastos), args.Error(1)
}

func (m *MockCondonacionService) ResumenPago(ctx context.Context, idCredito int64) (*domain.ResumenPago, error) {
	args := m.Called(ctx, idCredito)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumenPago), args.Error(1)
}

// NewMockCondonacionService creates a new mock service instance
func NewMockCondonacionService() *MockCondonacionService {
	return &MockCondonacionService{}
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrCreditoNoEncontrado = errors.New("credito no encontrado")
	ErrIDCreditoInvalido   = errors.New("id de credito invalido")
	ErrSinDatosSaldos      = errors.New("la API externa no retorno datosSaldos")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeInvalidCreditID = "INVALID_CREDIT_ID"
	ErrCodeCreditNotFound  = "CREDIT_NOT_FOUND"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeExternalAPI     = "EXTERNAL_API_ERROR"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// HTTPStatus maps an error to its response status: validation 400,
// not-found 404, external API 502, everything else 500.
func HTTPStatus(err error) int {
	var bizErr *BusinessError
	if !errors.As(err, &bizErr) {
		return http.StatusInternalServerError
	}

	switch bizErr.Code {
	case ErrCodeInvalidCreditID:
		return http.StatusBadRequest
	case ErrCodeCreditNotFound:
		return http.StatusNotFound
	case ErrCodeExternalAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the human-readable message carried by a business error,
// or a generic one for unclassified failures.
func Message(err error) string {
	var bizErr *BusinessError
	if errors.As(err, &bizErr) {
		return bizErr.Message
	}
	return fmt.Sprintf("Error interno del servidor: %v", err)
}

// Wrap common errors with business context
func WrapIDCreditoInvalido(raw string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidCreditID,
		fmt.Sprintf("El ID de crédito '%s' es inválido, debe ser un entero positivo", raw),
		ErrIDCreditoInvalido,
	)
}

func WrapCreditoNoEncontrado(idCredito int64) *BusinessError {
	return NewBusinessError(
		ErrCodeCreditNotFound,
		fmt.Sprintf("No se encontraron datos de cliente para el crédito %d", idCredito),
		ErrCreditoNoEncontrado,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		fmt.Sprintf("Error de base de datos: %v", err),
		err,
	)
}

func WrapExternalTimeout(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeExternalAPI,
		"Tiempo de espera agotado al consultar la API externa",
		err,
	)
}

func WrapExternalStatus(statusCode int) *BusinessError {
	return NewBusinessError(
		ErrCodeExternalAPI,
		fmt.Sprintf("Error en la API externa: %d", statusCode),
		nil,
	)
}

func WrapExternalTransport(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeExternalAPI,
		fmt.Sprintf("No se pudo conectar con la API externa: %v", err),
		err,
	)
}

func WrapSinDatosSaldos() *BusinessError {
	return NewBusinessError(
		ErrCodeExternalAPI,
		"La API externa no retornó datosSaldos para este crédito",
		ErrSinDatosSaldos,
	)
}

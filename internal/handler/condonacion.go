package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/maxikash/condonaciones-api/internal/domain"
	"github.com/maxikash/condonaciones-api/internal/service"
	"github.com/maxikash/condonaciones-api/pkg/response"
	"github.com/maxikash/condonaciones-api/pkg/utils"

	customError "github.com/maxikash/condonaciones-api/pkg/errors"
)

type CondonacionHandler struct {
	service   service.CondonacionService
	validator *validator.Validate
	log       *logrus.Logger
}

func NewCondonacionHandler(service service.CondonacionService, log *logrus.Logger) *CondonacionHandler {
	return &CondonacionHandler{
		service:   service,
		validator: validator.New(),
		log:       log,
	}
}

type creditoParams struct {
	IDCredito int64 `validate:"required,gt=0"`
}

// parseIDCredito validates the path id before any I/O happens
func (h *CondonacionHandler) parseIDCredito(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["idCredito"]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, customError.WrapIDCreditoInvalido(raw)
	}

	if err := h.validator.Struct(creditoParams{IDCredito: id}); err != nil {
		return 0, customError.WrapIDCreditoInvalido(raw)
	}

	return id, nil
}

func (h *CondonacionHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if customError.HTTPStatus(err) >= http.StatusInternalServerError {
		h.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	response.FromError(w, err)
}

// detalle is the shared path of the three filtered reports; only the filter
// and the count message differ.
func (h *CondonacionHandler) detalle(w http.ResponseWriter, r *http.Request, filtro domain.FiltroGastos, mensaje func(n int) string) {
	idCredito, err := h.parseIDCredito(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	reporte, err := h.service.Detalle(r.Context(), idCredito, filtro)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, domain.CondonacionResponse{
		Base:           response.OK(mensaje(len(reporte.Gastos))),
		DatosGenerales: reporte.DatosGenerales,
		CondonacionCobranza: domain.CondonacionCobranza{
			Detalle: reporte.Gastos,
		},
	})
}

// GetCondonados handles GET /condonaciones/{idCredito}
func (h *CondonacionHandler) GetCondonados(w http.ResponseWriter, r *http.Request) {
	h.detalle(w, r, domain.FiltroCondonados, func(n int) string {
		if n == 0 {
			return "No hay gastos condonados para este crédito"
		}
		return fmt.Sprintf("Se encontraron %d gastos condonados", n)
	})
}

// GetSoloCondonados handles GET /condonaciones/{idCredito}/solo-condonados
func (h *CondonacionHandler) GetSoloCondonados(w http.ResponseWriter, r *http.Request) {
	h.detalle(w, r, domain.FiltroCondonados, func(n int) string {
		return fmt.Sprintf("Se encontraron %d gastos condonados", n)
	})
}

// GetPendientes handles GET /condonaciones/{idCredito}/pendientes
func (h *CondonacionHandler) GetPendientes(w http.ResponseWriter, r *http.Request) {
	h.detalle(w, r, domain.FiltroPendientes, func(n int) string {
		return fmt.Sprintf("Se encontraron %d gastos pendientes de condonación", n)
	})
}

// GetGeneral handles GET /condonaciones/{idCredito}/general
func (h *CondonacionHandler) GetGeneral(w http.ResponseWriter, r *http.Request) {
	idCredito, err := h.parseIDCredito(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	reporte, err := h.service.General(r.Context(), idCredito)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, domain.GeneralResponse{
		Base:           response.OK(fmt.Sprintf("Se encontraron %d registros", reporte.Resumen.TotalRegistros)),
		DatosGenerales: reporte.DatosGenerales,
		Resumen:        reporte.Resumen,
		Detalle:        reporte.Gastos,
	})
}

// GetResumenSimple handles GET /condonaciones/{idCredito}/resumen-simple
func (h *CondonacionHandler) GetResumenSimple(w http.ResponseWriter, r *http.Request) {
	idCredito, err := h.parseIDCredito(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resumen, err := h.service.ResumenSimple(r.Context(), idCredito)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, domain.ResumenSimpleResponse{
		Base:               response.OK(fmt.Sprintf("Se encontraron %d parcialidades", resumen.TotalParcialidades)),
		IDCredito:          idCredito,
		TotalParcialidades: resumen.TotalParcialidades,
		MontoTotal:         utils.ToMonto(resumen.MontoTotal),
		Condonados:         resumen.Condonados,
		Pendientes:         resumen.Pendientes,
	})
}

// GetResumenPago handles GET /condonaciones/{idCredito}/resumen-pago
func (h *CondonacionHandler) GetResumenPago(w http.ResponseWriter, r *http.Request) {
	idCredito, err := h.parseIDCredito(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resumen, err := h.service.ResumenPago(r.Context(), idCredito)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, domain.ResumenPagoResponse{
		Base:                   response.OK("Resumen de pago calculado correctamente"),
		IDCredito:              resumen.IDCredito,
		CargoPagoTardio:        utils.ToMonto(resumen.CargoPagoTardio),
		TotalCargosPagosTardio: resumen.TotalCargosPagosTardio,
		SaldoVencidoCredito:    utils.ToMonto(resumen.SaldoVencidoCredito),
		NumeroCuotasCredito:    resumen.NumeroCuotasCredito,
		TotalAPagar:            utils.ToMonto(resumen.TotalAPagar),
	})
}

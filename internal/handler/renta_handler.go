package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"rentcar-service/internal/model"
	"rentcar-service/internal/renta"
	"rentcar-service/pkg/logger"
	"rentcar-service/prometheus"
)

// RentaHandler exposes the rental lifecycle over HTTP. Unlike the plain CRUD
// handlers it delegates to the lifecycle service instead of hitting the
// database directly.
type RentaHandler struct {
	service *renta.Service
}

func NewRentaHandler(service *renta.Service) *RentaHandler {
	return &RentaHandler{service: service}
}

// RentaRequest defines the structure for rental creation requests
type RentaRequest struct {
	VehiculoID   uuid.UUID       `json:"vehiculoId"`
	ClienteID    uuid.UUID       `json:"clienteId"`
	EmpleadoID   uuid.UUID       `json:"empleadoId"`
	FechaRenta   string          `json:"fechaRenta"`
	MontoPorDia  decimal.Decimal `json:"montoPorDia"`
	CantidadDias int             `json:"cantidadDias"`
	Comentario   string          `json:"comentario"`
}

// RentaUpdateRequest mirrors the raw update body of the legacy endpoint
type RentaUpdateRequest struct {
	FechaDevolucion string            `json:"fechaDevolucion"`
	Estado          model.EstadoRenta `json:"estado"`
	Comentario      string            `json:"comentario"`
}

// DevolucionRequest defines the structure for return-processing requests
type DevolucionRequest struct {
	FechaDevolucion string `json:"fechaDevolucion"`
	Comentario      string `json:"comentario"`
}

// List handles retrieving all rentals with expanded relations
func (h *RentaHandler) List(c echo.Context) error {
	log := logger.FromContext(c)

	rentas, err := h.service.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list rentas", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve rentas",
		})
	}

	return c.JSON(http.StatusOK, rentas)
}

// Get handles retrieving a single rental by ID
func (h *RentaHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid renta id"})
	}

	record, err := h.service.Get(c.Request().Context(), id)
	if errors.Is(err, renta.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Renta not found"})
	}
	if err != nil {
		log.Error("Failed to get renta", zap.String("renta_id", id.String()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve renta",
		})
	}

	return c.JSON(http.StatusOK, record)
}

// Create handles creating a new rental in state Activa
func (h *RentaHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req RentaRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	fechaRenta, err := time.Parse("2006-01-02", req.FechaRenta)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "fechaRenta must be a date in YYYY-MM-DD format",
		})
	}

	record, err := h.service.Create(c.Request().Context(), renta.CreateInput{
		VehiculoID:   req.VehiculoID,
		ClienteID:    req.ClienteID,
		EmpleadoID:   req.EmpleadoID,
		FechaRenta:   fechaRenta,
		MontoPorDia:  req.MontoPorDia,
		CantidadDias: req.CantidadDias,
		Comentario:   req.Comentario,
	})
	if err != nil {
		if isRentaValidationError(err) {
			log.Warn("Renta validation failed", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		log.Error("Failed to create renta", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create renta",
		})
	}

	prometheus.RecordRentaOperation("create")
	log.Info("Renta created successfully",
		zap.String("renta_id", record.ID.String()),
		zap.String("vehiculo_id", record.VehiculoID.String()),
		zap.String("total", record.Total().StringFixed(2)))
	return c.JSON(http.StatusCreated, record)
}

// Update handles the raw rental update. The body is applied as-is, matching
// the legacy endpoint: the state and return date are not cross-checked.
func (h *RentaHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid renta id"})
	}

	var req RentaUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	var fechaDevolucion *time.Time
	if req.FechaDevolucion != "" {
		fecha, err := time.Parse("2006-01-02", req.FechaDevolucion)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "fechaDevolucion must be a date in YYYY-MM-DD format",
			})
		}
		fechaDevolucion = &fecha
	}

	record, err := h.service.Update(c.Request().Context(), id, renta.UpdateInput{
		FechaDevolucion: fechaDevolucion,
		Estado:          req.Estado,
		Comentario:      req.Comentario,
	})
	if errors.Is(err, renta.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Renta not found"})
	}
	if err != nil {
		log.Error("Failed to update renta", zap.String("renta_id", id.String()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update renta",
		})
	}

	prometheus.RecordRentaOperation("update")
	return c.JSON(http.StatusOK, record)
}

// ProcessReturn handles marking a rental as returned
func (h *RentaHandler) ProcessReturn(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid renta id"})
	}

	var req DevolucionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	fecha, err := time.Parse("2006-01-02", req.FechaDevolucion)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "fechaDevolucion must be a date in YYYY-MM-DD format",
		})
	}

	record, err := h.service.ProcessReturn(c.Request().Context(), id, fecha, req.Comentario)
	if errors.Is(err, renta.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Renta not found"})
	}
	if err != nil {
		log.Error("Failed to process return", zap.String("renta_id", id.String()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to process return",
		})
	}

	prometheus.RecordRentaOperation("return")
	log.Info("Renta returned",
		zap.String("renta_id", record.ID.String()),
		zap.String("fecha_devolucion", fecha.Format("2006-01-02")))
	return c.JSON(http.StatusOK, record)
}

// Delete handles rental cancellation: an unconditional hard delete, matching
// the legacy endpoint even though the screens only offered it for Activa.
func (h *RentaHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid renta id"})
	}

	err = h.service.Cancel(c.Request().Context(), id)
	if errors.Is(err, renta.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Renta not found"})
	}
	if err != nil {
		log.Error("Failed to delete renta", zap.String("renta_id", id.String()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete renta",
		})
	}

	prometheus.RecordRentaOperation("cancel")
	log.Info("Renta deleted", zap.String("renta_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Renta eliminada",
	})
}

func isRentaValidationError(err error) bool {
	return errors.Is(err, renta.ErrVehiculoRequired) ||
		errors.Is(err, renta.ErrClienteRequired) ||
		errors.Is(err, renta.ErrEmpleadoRequired) ||
		errors.Is(err, renta.ErrMontoInvalido) ||
		errors.Is(err, renta.ErrDiasInvalidos)
}

package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rentcar-service/internal/model"
	"rentcar-service/internal/renta"
	"rentcar-service/internal/report"
	"rentcar-service/pkg/logger"
	"rentcar-service/prometheus"
)

// ReporteHandler serves the reporting screen: filtered rentals, summary
// statistics, and the PDF export.
type ReporteHandler struct {
	service *renta.Service
}

func NewReporteHandler(service *renta.Service) *ReporteHandler {
	return &ReporteHandler{service: service}
}

// parseFilter builds the report filter from query parameters. Empty
// parameters are ignored; malformed ones are rejected.
func parseFilter(c echo.Context) (report.Filter, error) {
	var filter report.Filter

	if v := c.QueryParam("fechaInicio"); v != "" {
		fecha, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, fmt.Errorf("fechaInicio must be a date in YYYY-MM-DD format")
		}
		filter.FechaInicio = &fecha
	}
	if v := c.QueryParam("fechaFin"); v != "" {
		fecha, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, fmt.Errorf("fechaFin must be a date in YYYY-MM-DD format")
		}
		filter.FechaFin = &fecha
	}
	if v := c.QueryParam("clienteId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, fmt.Errorf("clienteId is not a valid id")
		}
		filter.ClienteID = id
	}
	if v := c.QueryParam("vehiculoId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, fmt.Errorf("vehiculoId is not a valid id")
		}
		filter.VehiculoID = id
	}
	if v := c.QueryParam("estado"); v != "" {
		filter.Estado = model.EstadoRenta(v)
	}
	filter.TipoVehiculo = c.QueryParam("tipoVehiculo")

	return filter, nil
}

// Get handles the report query: filtered rentals plus summary statistics
func (h *ReporteHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	filter, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	rentas, err := h.service.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to load rentas for report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build report",
		})
	}

	filtered := filter.Apply(rentas)
	stats := report.Summarize(filtered)

	prometheus.RecordReportRequest("json")
	log.Info("Report generated",
		zap.Int("total", stats.TotalRentas),
		zap.String("ingreso_total", stats.IngresoTotal.StringFixed(2)))
	return c.JSON(http.StatusOK, echo.Map{
		"rentas": filtered,
		"stats":  stats,
	})
}

// GetPDF handles the PDF export of the same report
func (h *ReporteHandler) GetPDF(c echo.Context) error {
	log := logger.FromContext(c)

	filter, err := parseFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	rentas, err := h.service.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to load rentas for PDF report", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build report",
		})
	}

	filtered := filter.Apply(rentas)
	stats := report.Summarize(filtered)

	c.Response().Header().Set(echo.HeaderContentType, "application/pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="reporte-rentas.pdf"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := report.RenderPDF(c.Response(), filtered, stats, time.Now()); err != nil {
		log.Error("Failed to render PDF report", zap.Error(err))
		return err
	}

	prometheus.RecordReportRequest("pdf")
	return nil
}

package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rentcar-service/internal/model"
	"rentcar-service/pkg/database"
	"rentcar-service/pkg/logger"
	"rentcar-service/prometheus"
)

// InspeccionRequest defines the structure for inspection creation/update requests
type InspeccionRequest struct {
	VehiculoID         uuid.UUID `json:"vehiculoId"`
	ClienteID          uuid.UUID `json:"clienteId"`
	EmpleadoID         uuid.UUID `json:"empleadoId"`
	TieneRalladuras    bool      `json:"tieneRalladuras"`
	NivelCombustible   string    `json:"nivelCombustible"`
	TieneGomaRespuesta bool      `json:"tieneGomaRespuesta"`
	TieneGato          bool      `json:"tieneGato"`
	EstadoGomas        string    `json:"estadoGomas"`
	Observaciones      string    `json:"observaciones"`
	Estado             *bool     `json:"estado"`
}

// Validate checks the request references and fuel level.
func (r *InspeccionRequest) Validate() string {
	if r.VehiculoID == uuid.Nil || r.ClienteID == uuid.Nil || r.EmpleadoID == uuid.Nil {
		return "vehiculoId, clienteId and empleadoId are required"
	}
	switch r.NivelCombustible {
	case model.NivelLleno, model.NivelTresCuarto, model.NivelMedio, model.NivelCuarto:
		return ""
	default:
		return "nivelCombustible must be one of Lleno, 3/4, Medio, 1/4"
	}
}

// ListInspecciones handles retrieving all inspections, optionally filtered by vehicle
func ListInspecciones(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().
		Preload("Vehiculo").
		Preload("Vehiculo.Marca").
		Preload("Vehiculo.Modelo").
		Preload("Cliente").
		Preload("Empleado").
		Order("fecha DESC")

	if vehiculoID := c.QueryParam("vehiculoId"); vehiculoID != "" {
		id, err := uuid.Parse(vehiculoID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid vehiculoId filter"})
		}
		query = query.Where("vehiculo_id = ?", id)
	}

	var inspecciones []model.Inspeccion
	result := query.Find(&inspecciones)
	if result.Error != nil {
		log.Error("Failed to list inspecciones", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve inspecciones",
		})
	}

	return c.JSON(http.StatusOK, inspecciones)
}

// GetInspeccion handles retrieving a single inspection by ID
func GetInspeccion(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid inspeccion id"})
	}

	var inspeccion model.Inspeccion
	result := database.GetDB().
		Preload("Vehiculo").
		Preload("Vehiculo.Marca").
		Preload("Vehiculo.Modelo").
		Preload("Cliente").
		Preload("Empleado").
		First(&inspeccion, "id = ?", id)
	if result.Error != nil {
		log.Warn("Inspeccion not found", zap.String("inspeccion_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Inspeccion not found",
		})
	}

	return c.JSON(http.StatusOK, inspeccion)
}

// CreateInspeccion handles creating a new inspection
func CreateInspeccion(c echo.Context) error {
	log := logger.FromContext(c)

	var req InspeccionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if msg := req.Validate(); msg != "" {
		log.Warn("Inspeccion validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	inspeccion := model.Inspeccion{
		VehiculoID:         req.VehiculoID,
		ClienteID:          req.ClienteID,
		EmpleadoID:         req.EmpleadoID,
		TieneRalladuras:    req.TieneRalladuras,
		NivelCombustible:   req.NivelCombustible,
		TieneGomaRespuesta: req.TieneGomaRespuesta,
		TieneGato:          req.TieneGato,
		EstadoGomas:        req.EstadoGomas,
		Observaciones:      req.Observaciones,
		Fecha:              time.Now(),
		Estado:             true,
	}

	result := database.GetDB().Create(&inspeccion)
	if result.Error != nil {
		log.Error("Failed to create inspeccion", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create inspeccion",
		})
	}

	database.GetDB().
		Preload("Vehiculo").
		Preload("Vehiculo.Marca").
		Preload("Vehiculo.Modelo").
		Preload("Cliente").
		Preload("Empleado").
		First(&inspeccion, "id = ?", inspeccion.ID)

	prometheus.RecordEntityOperation("inspecciones", "create")
	log.Info("Inspeccion created successfully",
		zap.String("inspeccion_id", inspeccion.ID.String()),
		zap.String("vehiculo_id", inspeccion.VehiculoID.String()))
	return c.JSON(http.StatusCreated, inspeccion)
}

// UpdateInspeccion handles updating an existing inspection
func UpdateInspeccion(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid inspeccion id"})
	}

	var req InspeccionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if msg := req.Validate(); msg != "" {
		log.Warn("Inspeccion validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	var inspeccion model.Inspeccion
	result := database.GetDB().First(&inspeccion, "id = ?", id)
	if result.Error != nil {
		log.Warn("Inspeccion not found for update", zap.String("inspeccion_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Inspeccion not found",
		})
	}

	inspeccion.VehiculoID = req.VehiculoID
	inspeccion.ClienteID = req.ClienteID
	inspeccion.EmpleadoID = req.EmpleadoID
	inspeccion.TieneRalladuras = req.TieneRalladuras
	inspeccion.NivelCombustible = req.NivelCombustible
	inspeccion.TieneGomaRespuesta = req.TieneGomaRespuesta
	inspeccion.TieneGato = req.TieneGato
	inspeccion.EstadoGomas = req.EstadoGomas
	inspeccion.Observaciones = req.Observaciones
	if req.Estado != nil {
		inspeccion.Estado = *req.Estado
	}

	result = database.GetDB().Save(&inspeccion)
	if result.Error != nil {
		log.Error("Failed to update inspeccion", zap.String("inspeccion_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update inspeccion",
		})
	}

	prometheus.RecordEntityOperation("inspecciones", "update")
	return c.JSON(http.StatusOK, inspeccion)
}

// DeleteInspeccion handles deleting an inspection
func DeleteInspeccion(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid inspeccion id"})
	}

	result := database.GetDB().Delete(&model.Inspeccion{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete inspeccion", zap.String("inspeccion_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete inspeccion",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Inspeccion not found",
		})
	}

	prometheus.RecordEntityOperation("inspecciones", "delete")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Inspeccion eliminada",
	})
}

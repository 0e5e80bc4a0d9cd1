package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"rentcar-service/internal/model"
	"rentcar-service/pkg/cedula"
	"rentcar-service/pkg/database"
	"rentcar-service/pkg/logger"
	"rentcar-service/prometheus"
)

// EmpleadoRequest defines the structure for employee creation/update requests
type EmpleadoRequest struct {
	Nombre            string          `json:"nombre"`
	Cedula            string          `json:"cedula"`
	TandaLabor        string          `json:"tandaLabor"`
	PorcientoComision decimal.Decimal `json:"porcientoComision"`
	FechaIngreso      string          `json:"fechaIngreso"`
	Estado            *bool           `json:"estado"`
}

// Validate checks the request fields and parses the hire date.
func (r *EmpleadoRequest) Validate() (time.Time, string) {
	if r.Nombre == "" {
		return time.Time{}, "nombre is required"
	}
	if !cedula.Validate(r.Cedula) {
		return time.Time{}, "cedula is not valid"
	}
	if r.PorcientoComision.IsNegative() || r.PorcientoComision.GreaterThan(decimal.NewFromInt(100)) {
		return time.Time{}, "porcientoComision must be between 0 and 100"
	}
	fechaIngreso, err := time.Parse("2006-01-02", r.FechaIngreso)
	if err != nil {
		return time.Time{}, "fechaIngreso must be a date in YYYY-MM-DD format"
	}
	return fechaIngreso, ""
}

// ListEmpleados handles retrieving all employees
func ListEmpleados(c echo.Context) error {
	log := logger.FromContext(c)

	var empleados []model.Empleado
	result := database.GetDB().Order("created_at DESC").Find(&empleados)
	if result.Error != nil {
		log.Error("Failed to list empleados", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve empleados",
		})
	}

	return c.JSON(http.StatusOK, empleados)
}

// GetEmpleado handles retrieving a single employee by ID
func GetEmpleado(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid empleado id"})
	}

	var empleado model.Empleado
	result := database.GetDB().First(&empleado, "id = ?", id)
	if result.Error != nil {
		log.Warn("Empleado not found", zap.String("empleado_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Empleado not found",
		})
	}

	return c.JSON(http.StatusOK, empleado)
}

// CreateEmpleado handles creating a new employee
func CreateEmpleado(c echo.Context) error {
	log := logger.FromContext(c)

	var req EmpleadoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	fechaIngreso, msg := req.Validate()
	if msg != "" {
		log.Warn("Empleado validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	empleado := model.Empleado{
		Nombre:            req.Nombre,
		Cedula:            req.Cedula,
		TandaLabor:        req.TandaLabor,
		PorcientoComision: req.PorcientoComision,
		FechaIngreso:      fechaIngreso,
		Estado:            true,
	}

	result := database.GetDB().Create(&empleado)
	if result.Error != nil {
		log.Error("Failed to create empleado", zap.String("nombre", req.Nombre), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create empleado",
		})
	}

	prometheus.RecordEntityOperation("empleados", "create")
	log.Info("Empleado created successfully",
		zap.String("empleado_id", empleado.ID.String()),
		zap.String("nombre", empleado.Nombre))
	return c.JSON(http.StatusCreated, empleado)
}

// UpdateEmpleado handles updating an existing employee
func UpdateEmpleado(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid empleado id"})
	}

	var req EmpleadoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	fechaIngreso, msg := req.Validate()
	if msg != "" {
		log.Warn("Empleado validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	var empleado model.Empleado
	result := database.GetDB().First(&empleado, "id = ?", id)
	if result.Error != nil {
		log.Warn("Empleado not found for update", zap.String("empleado_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Empleado not found",
		})
	}

	empleado.Nombre = req.Nombre
	empleado.Cedula = req.Cedula
	empleado.TandaLabor = req.TandaLabor
	empleado.PorcientoComision = req.PorcientoComision
	empleado.FechaIngreso = fechaIngreso
	if req.Estado != nil {
		empleado.Estado = *req.Estado
	}

	result = database.GetDB().Save(&empleado)
	if result.Error != nil {
		log.Error("Failed to update empleado", zap.String("empleado_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update empleado",
		})
	}

	prometheus.RecordEntityOperation("empleados", "update")
	return c.JSON(http.StatusOK, empleado)
}

// DeleteEmpleado handles deleting an employee
func DeleteEmpleado(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid empleado id"})
	}

	result := database.GetDB().Delete(&model.Empleado{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete empleado", zap.String("empleado_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete empleado",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Empleado not found",
		})
	}

	prometheus.RecordEntityOperation("empleados", "delete")
	log.Info("Empleado deleted successfully", zap.String("empleado_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Empleado eliminado",
	})
}

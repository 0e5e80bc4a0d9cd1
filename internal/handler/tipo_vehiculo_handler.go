package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rentcar-service/internal/model"
	"rentcar-service/pkg/database"
	"rentcar-service/pkg/logger"
	"rentcar-service/prometheus"
)

// ListTiposVehiculos handles retrieving all vehicle types
func ListTiposVehiculos(c echo.Context) error {
	log := logger.FromContext(c)

	var tipos []model.TipoVehiculo
	result := database.GetDB().Order("created_at DESC").Find(&tipos)
	if result.Error != nil {
		log.Error("Failed to list tipos de vehiculos", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve tipos de vehiculos",
		})
	}

	return c.JSON(http.StatusOK, tipos)
}

// GetTipoVehiculo handles retrieving a single vehicle type by ID
func GetTipoVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tipo de vehiculo id"})
	}

	var tipo model.TipoVehiculo
	result := database.GetDB().First(&tipo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tipo de vehiculo not found", zap.String("tipo_vehiculo_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tipo de vehiculo not found",
		})
	}

	return c.JSON(http.StatusOK, tipo)
}

// CreateTipoVehiculo handles creating a new vehicle type
func CreateTipoVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	var req CatalogoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.Descripcion == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "descripcion is required"})
	}

	var count int64
	database.GetDB().Model(&model.TipoVehiculo{}).Where("descripcion = ?", req.Descripcion).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Tipo de vehiculo with this descripcion already exists",
		})
	}

	tipo := model.TipoVehiculo{
		Descripcion: req.Descripcion,
		Estado:      true,
	}

	result := database.GetDB().Create(&tipo)
	if result.Error != nil {
		log.Error("Failed to create tipo de vehiculo", zap.String("descripcion", req.Descripcion), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create tipo de vehiculo",
		})
	}

	prometheus.RecordEntityOperation("tipos_vehiculos", "create")
	return c.JSON(http.StatusCreated, tipo)
}

// UpdateTipoVehiculo handles updating an existing vehicle type
func UpdateTipoVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tipo de vehiculo id"})
	}

	var req CatalogoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.Descripcion == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "descripcion is required"})
	}

	var tipo model.TipoVehiculo
	result := database.GetDB().First(&tipo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tipo de vehiculo not found for update", zap.String("tipo_vehiculo_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tipo de vehiculo not found",
		})
	}

	if req.Descripcion != tipo.Descripcion {
		var count int64
		database.GetDB().Model(&model.TipoVehiculo{}).
			Where("descripcion = ? AND id != ?", req.Descripcion, id).Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Tipo de vehiculo with this descripcion already exists",
			})
		}
	}

	tipo.Descripcion = req.Descripcion
	if req.Estado != nil {
		tipo.Estado = *req.Estado
	}

	result = database.GetDB().Save(&tipo)
	if result.Error != nil {
		log.Error("Failed to update tipo de vehiculo", zap.String("tipo_vehiculo_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update tipo de vehiculo",
		})
	}

	prometheus.RecordEntityOperation("tipos_vehiculos", "update")
	return c.JSON(http.StatusOK, tipo)
}

// DeleteTipoVehiculo handles deleting a vehicle type
func DeleteTipoVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tipo de vehiculo id"})
	}

	result := database.GetDB().Delete(&model.TipoVehiculo{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete tipo de vehiculo", zap.String("tipo_vehiculo_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete tipo de vehiculo",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tipo de vehiculo not found",
		})
	}

	prometheus.RecordEntityOperation("tipos_vehiculos", "delete")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Tipo de vehiculo eliminado",
	})
}

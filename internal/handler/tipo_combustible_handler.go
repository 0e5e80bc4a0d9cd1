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

// ListTiposCombustible handles retrieving all fuel types
func ListTiposCombustible(c echo.Context) error {
	log := logger.FromContext(c)

	var tipos []model.TipoCombustible
	result := database.GetDB().Order("created_at DESC").Find(&tipos)
	if result.Error != nil {
		log.Error("Failed to list tipos de combustible", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve tipos de combustible",
		})
	}

	return c.JSON(http.StatusOK, tipos)
}

// GetTipoCombustible handles retrieving a single fuel type by ID
func GetTipoCombustible(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tipo de combustible id"})
	}

	var tipo model.TipoCombustible
	result := database.GetDB().First(&tipo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tipo de combustible not found", zap.String("tipo_combustible_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tipo de combustible not found",
		})
	}

	return c.JSON(http.StatusOK, tipo)
}

// CreateTipoCombustible handles creating a new fuel type
func CreateTipoCombustible(c echo.Context) error {
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
	database.GetDB().Model(&model.TipoCombustible{}).Where("descripcion = ?", req.Descripcion).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Tipo de combustible with this descripcion already exists",
		})
	}

	tipo := model.TipoCombustible{
		Descripcion: req.Descripcion,
		Estado:      true,
	}

	result := database.GetDB().Create(&tipo)
	if result.Error != nil {
		log.Error("Failed to create tipo de combustible", zap.String("descripcion", req.Descripcion), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create tipo de combustible",
		})
	}

	prometheus.RecordEntityOperation("tipos_combustible", "create")
	return c.JSON(http.StatusCreated, tipo)
}

// UpdateTipoCombustible handles updating an existing fuel type
func UpdateTipoCombustible(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tipo de combustible id"})
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

	var tipo model.TipoCombustible
	result := database.GetDB().First(&tipo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tipo de combustible not found for update", zap.String("tipo_combustible_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tipo de combustible not found",
		})
	}

	if req.Descripcion != tipo.Descripcion {
		var count int64
		database.GetDB().Model(&model.TipoCombustible{}).
			Where("descripcion = ? AND id != ?", req.Descripcion, id).Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Tipo de combustible with this descripcion already exists",
			})
		}
	}

	tipo.Descripcion = req.Descripcion
	if req.Estado != nil {
		tipo.Estado = *req.Estado
	}

	result = database.GetDB().Save(&tipo)
	if result.Error != nil {
		log.Error("Failed to update tipo de combustible", zap.String("tipo_combustible_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update tipo de combustible",
		})
	}

	prometheus.RecordEntityOperation("tipos_combustible", "update")
	return c.JSON(http.StatusOK, tipo)
}

// DeleteTipoCombustible handles deleting a fuel type
func DeleteTipoCombustible(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tipo de combustible id"})
	}

	result := database.GetDB().Delete(&model.TipoCombustible{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete tipo de combustible", zap.String("tipo_combustible_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete tipo de combustible",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tipo de combustible not found",
		})
	}

	prometheus.RecordEntityOperation("tipos_combustible", "delete")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Tipo de combustible eliminado",
	})
}

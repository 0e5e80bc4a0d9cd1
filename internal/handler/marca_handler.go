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

// CatalogoRequest defines the structure shared by catalog creation/update requests
type CatalogoRequest struct {
	Descripcion string `json:"descripcion"`
	Estado      *bool  `json:"estado"`
}

// ListMarcas handles retrieving all brands
func ListMarcas(c echo.Context) error {
	log := logger.FromContext(c)

	var marcas []model.Marca
	result := database.GetDB().Order("created_at DESC").Find(&marcas)
	if result.Error != nil {
		log.Error("Failed to list marcas", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve marcas",
		})
	}

	return c.JSON(http.StatusOK, marcas)
}

// GetMarca handles retrieving a single brand by ID
func GetMarca(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid marca id"})
	}

	var marca model.Marca
	result := database.GetDB().First(&marca, "id = ?", id)
	if result.Error != nil {
		log.Warn("Marca not found", zap.String("marca_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Marca not found",
		})
	}

	return c.JSON(http.StatusOK, marca)
}

// CreateMarca handles creating a new brand
func CreateMarca(c echo.Context) error {
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

	// Descriptions are unique across active and inactive rows alike
	var count int64
	database.GetDB().Model(&model.Marca{}).Where("descripcion = ?", req.Descripcion).Count(&count)
	if count > 0 {
		log.Warn("Marca with this descripcion already exists", zap.String("descripcion", req.Descripcion))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Marca with this descripcion already exists",
		})
	}

	marca := model.Marca{
		Descripcion: req.Descripcion,
		Estado:      true,
	}

	result := database.GetDB().Create(&marca)
	if result.Error != nil {
		log.Error("Failed to create marca", zap.String("descripcion", req.Descripcion), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create marca",
		})
	}

	prometheus.RecordEntityOperation("marcas", "create")
	log.Info("Marca created successfully",
		zap.String("marca_id", marca.ID.String()),
		zap.String("descripcion", marca.Descripcion))
	return c.JSON(http.StatusCreated, marca)
}

// UpdateMarca handles updating an existing brand
func UpdateMarca(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid marca id"})
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

	var marca model.Marca
	result := database.GetDB().First(&marca, "id = ?", id)
	if result.Error != nil {
		log.Warn("Marca not found for update", zap.String("marca_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Marca not found",
		})
	}

	if req.Descripcion != marca.Descripcion {
		var count int64
		database.GetDB().Model(&model.Marca{}).
			Where("descripcion = ? AND id != ?", req.Descripcion, id).Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Marca with this descripcion already exists",
			})
		}
	}

	marca.Descripcion = req.Descripcion
	if req.Estado != nil {
		marca.Estado = *req.Estado
	}

	result = database.GetDB().Save(&marca)
	if result.Error != nil {
		log.Error("Failed to update marca", zap.String("marca_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update marca",
		})
	}

	prometheus.RecordEntityOperation("marcas", "update")
	return c.JSON(http.StatusOK, marca)
}

// DeleteMarca handles deleting a brand
func DeleteMarca(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid marca id"})
	}

	result := database.GetDB().Delete(&model.Marca{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete marca", zap.String("marca_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete marca",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Marca not found",
		})
	}

	prometheus.RecordEntityOperation("marcas", "delete")
	log.Info("Marca deleted successfully", zap.String("marca_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Marca eliminada",
	})
}

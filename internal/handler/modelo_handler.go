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

// ModeloRequest defines the structure for model creation/update requests
type ModeloRequest struct {
	MarcaID     uuid.UUID `json:"marcaId"`
	Descripcion string    `json:"descripcion"`
	Estado      *bool     `json:"estado"`
}

// ListModelos handles retrieving all models with their brand
func ListModelos(c echo.Context) error {
	log := logger.FromContext(c)

	var modelos []model.Modelo
	result := database.GetDB().Preload("Marca").Order("created_at DESC").Find(&modelos)
	if result.Error != nil {
		log.Error("Failed to list modelos", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve modelos",
		})
	}

	return c.JSON(http.StatusOK, modelos)
}

// GetModelo handles retrieving a single model by ID
func GetModelo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid modelo id"})
	}

	var modelo model.Modelo
	result := database.GetDB().Preload("Marca").First(&modelo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Modelo not found", zap.String("modelo_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Modelo not found",
		})
	}

	return c.JSON(http.StatusOK, modelo)
}

// CreateModelo handles creating a new model
func CreateModelo(c echo.Context) error {
	log := logger.FromContext(c)

	var req ModeloRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.Descripcion == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "descripcion is required"})
	}
	if req.MarcaID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "marcaId is required"})
	}

	// The brand must exist; the FK alone would surface as a generic failure
	var marcaCount int64
	database.GetDB().Model(&model.Marca{}).Where("id = ?", req.MarcaID).Count(&marcaCount)
	if marcaCount == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "marcaId does not reference an existing marca"})
	}

	var count int64
	database.GetDB().Model(&model.Modelo{}).Where("descripcion = ?", req.Descripcion).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Modelo with this descripcion already exists",
		})
	}

	modelo := model.Modelo{
		MarcaID:     req.MarcaID,
		Descripcion: req.Descripcion,
		Estado:      true,
	}

	result := database.GetDB().Create(&modelo)
	if result.Error != nil {
		log.Error("Failed to create modelo", zap.String("descripcion", req.Descripcion), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create modelo",
		})
	}

	// Return the record with its brand expanded
	database.GetDB().Preload("Marca").First(&modelo, "id = ?", modelo.ID)

	prometheus.RecordEntityOperation("modelos", "create")
	log.Info("Modelo created successfully",
		zap.String("modelo_id", modelo.ID.String()),
		zap.String("descripcion", modelo.Descripcion))
	return c.JSON(http.StatusCreated, modelo)
}

// UpdateModelo handles updating an existing model
func UpdateModelo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid modelo id"})
	}

	var req ModeloRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if req.Descripcion == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "descripcion is required"})
	}

	var modelo model.Modelo
	result := database.GetDB().First(&modelo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Modelo not found for update", zap.String("modelo_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Modelo not found",
		})
	}

	if req.Descripcion != modelo.Descripcion {
		var count int64
		database.GetDB().Model(&model.Modelo{}).
			Where("descripcion = ? AND id != ?", req.Descripcion, id).Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Modelo with this descripcion already exists",
			})
		}
	}

	if req.MarcaID != uuid.Nil {
		modelo.MarcaID = req.MarcaID
	}
	modelo.Descripcion = req.Descripcion
	if req.Estado != nil {
		modelo.Estado = *req.Estado
	}

	result = database.GetDB().Save(&modelo)
	if result.Error != nil {
		log.Error("Failed to update modelo", zap.String("modelo_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update modelo",
		})
	}

	database.GetDB().Preload("Marca").First(&modelo, "id = ?", modelo.ID)

	prometheus.RecordEntityOperation("modelos", "update")
	return c.JSON(http.StatusOK, modelo)
}

// DeleteModelo handles deleting a model
func DeleteModelo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid modelo id"})
	}

	result := database.GetDB().Delete(&model.Modelo{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete modelo", zap.String("modelo_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete modelo",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Modelo not found",
		})
	}

	prometheus.RecordEntityOperation("modelos", "delete")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Modelo eliminado",
	})
}

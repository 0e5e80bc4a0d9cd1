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

// VehiculoRequest defines the structure for vehicle creation/update requests
type VehiculoRequest struct {
	Descripcion       string    `json:"descripcion"`
	NoChasis          string    `json:"noChasis"`
	NoMotor           string    `json:"noMotor"`
	NoPlaca           string    `json:"noPlaca"`
	TipoVehiculoID    uuid.UUID `json:"tipoVehiculoId"`
	MarcaID           uuid.UUID `json:"marcaId"`
	ModeloID          uuid.UUID `json:"modeloId"`
	TipoCombustibleID uuid.UUID `json:"tipoCombustibleId"`
	Estado            *bool     `json:"estado"`
}

// Validate checks the request fields. The brand/model pair is deliberately not
// cross-checked: a vehicle can reference a model belonging to another brand,
// as the legacy screens allowed.
func (r *VehiculoRequest) Validate() string {
	if r.Descripcion == "" {
		return "descripcion is required"
	}
	if r.NoChasis == "" || r.NoMotor == "" || r.NoPlaca == "" {
		return "noChasis, noMotor and noPlaca are required"
	}
	if r.TipoVehiculoID == uuid.Nil || r.MarcaID == uuid.Nil || r.ModeloID == uuid.Nil || r.TipoCombustibleID == uuid.Nil {
		return "tipoVehiculoId, marcaId, modeloId and tipoCombustibleId are required"
	}
	return ""
}

// ListVehiculos handles retrieving all vehicles with expanded relations
func ListVehiculos(c echo.Context) error {
	log := logger.FromContext(c)

	var vehiculos []model.Vehiculo
	result := database.GetDB().
		Preload("TipoVehiculo").
		Preload("Marca").
		Preload("Modelo").
		Preload("TipoCombustible").
		Order("created_at DESC").
		Find(&vehiculos)
	if result.Error != nil {
		log.Error("Failed to list vehiculos", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve vehiculos",
		})
	}

	return c.JSON(http.StatusOK, vehiculos)
}

// GetVehiculo handles retrieving a single vehicle by ID
func GetVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid vehiculo id"})
	}

	var vehiculo model.Vehiculo
	result := database.GetDB().
		Preload("TipoVehiculo").
		Preload("Marca").
		Preload("Modelo").
		Preload("TipoCombustible").
		First(&vehiculo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Vehiculo not found", zap.String("vehiculo_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Vehiculo not found",
		})
	}

	return c.JSON(http.StatusOK, vehiculo)
}

// CreateVehiculo handles creating a new vehicle
func CreateVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	var req VehiculoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if msg := req.Validate(); msg != "" {
		log.Warn("Vehiculo validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	// Chassis, engine and plate numbers are unique across the fleet
	var count int64
	database.GetDB().Model(&model.Vehiculo{}).
		Where("no_chasis = ? OR no_motor = ? OR no_placa = ?", req.NoChasis, req.NoMotor, req.NoPlaca).
		Count(&count)
	if count > 0 {
		log.Warn("Vehiculo with duplicate chasis/motor/placa",
			zap.String("no_placa", req.NoPlaca))
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Vehiculo with this chasis, motor or placa already exists",
		})
	}

	vehiculo := model.Vehiculo{
		Descripcion:       req.Descripcion,
		NoChasis:          req.NoChasis,
		NoMotor:           req.NoMotor,
		NoPlaca:           req.NoPlaca,
		TipoVehiculoID:    req.TipoVehiculoID,
		MarcaID:           req.MarcaID,
		ModeloID:          req.ModeloID,
		TipoCombustibleID: req.TipoCombustibleID,
		Estado:            true,
	}

	result := database.GetDB().Create(&vehiculo)
	if result.Error != nil {
		log.Error("Failed to create vehiculo", zap.String("no_placa", req.NoPlaca), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create vehiculo",
		})
	}

	database.GetDB().
		Preload("TipoVehiculo").
		Preload("Marca").
		Preload("Modelo").
		Preload("TipoCombustible").
		First(&vehiculo, "id = ?", vehiculo.ID)

	prometheus.RecordEntityOperation("vehiculos", "create")
	log.Info("Vehiculo created successfully",
		zap.String("vehiculo_id", vehiculo.ID.String()),
		zap.String("no_placa", vehiculo.NoPlaca))
	return c.JSON(http.StatusCreated, vehiculo)
}

// UpdateVehiculo handles updating an existing vehicle
func UpdateVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid vehiculo id"})
	}

	var req VehiculoRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if msg := req.Validate(); msg != "" {
		log.Warn("Vehiculo validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	var vehiculo model.Vehiculo
	result := database.GetDB().First(&vehiculo, "id = ?", id)
	if result.Error != nil {
		log.Warn("Vehiculo not found for update", zap.String("vehiculo_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Vehiculo not found",
		})
	}

	var count int64
	database.GetDB().Model(&model.Vehiculo{}).
		Where("(no_chasis = ? OR no_motor = ? OR no_placa = ?) AND id != ?",
			req.NoChasis, req.NoMotor, req.NoPlaca, id).
		Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Vehiculo with this chasis, motor or placa already exists",
		})
	}

	vehiculo.Descripcion = req.Descripcion
	vehiculo.NoChasis = req.NoChasis
	vehiculo.NoMotor = req.NoMotor
	vehiculo.NoPlaca = req.NoPlaca
	vehiculo.TipoVehiculoID = req.TipoVehiculoID
	vehiculo.MarcaID = req.MarcaID
	vehiculo.ModeloID = req.ModeloID
	vehiculo.TipoCombustibleID = req.TipoCombustibleID
	if req.Estado != nil {
		vehiculo.Estado = *req.Estado
	}

	result = database.GetDB().Save(&vehiculo)
	if result.Error != nil {
		log.Error("Failed to update vehiculo", zap.String("vehiculo_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update vehiculo",
		})
	}

	database.GetDB().
		Preload("TipoVehiculo").
		Preload("Marca").
		Preload("Modelo").
		Preload("TipoCombustible").
		First(&vehiculo, "id = ?", vehiculo.ID)

	prometheus.RecordEntityOperation("vehiculos", "update")
	return c.JSON(http.StatusOK, vehiculo)
}

// DeleteVehiculo handles deleting a vehicle
func DeleteVehiculo(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid vehiculo id"})
	}

	result := database.GetDB().Delete(&model.Vehiculo{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete vehiculo", zap.String("vehiculo_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete vehiculo",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Vehiculo not found",
		})
	}

	prometheus.RecordEntityOperation("vehiculos", "delete")
	log.Info("Vehiculo deleted successfully", zap.String("vehiculo_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Vehiculo eliminado",
	})
}

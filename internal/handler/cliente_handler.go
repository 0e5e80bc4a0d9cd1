package handler

import (
	"net/http"

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

// ClienteRequest defines the structure for client creation/update requests
type ClienteRequest struct {
	Nombre        string          `json:"nombre"`
	Cedula        string          `json:"cedula"`
	TarjetaCR     string          `json:"tarjetaCR"`
	LimiteCredito decimal.Decimal `json:"limiteCredito"`
	TipoPersona   string          `json:"tipoPersona"`
	Estado        *bool           `json:"estado"`
}

// Validate checks the request fields; returns a message suited for the caller.
func (r *ClienteRequest) Validate() string {
	if r.Nombre == "" {
		return "nombre is required"
	}
	if !cedula.Validate(r.Cedula) {
		return "cedula is not valid"
	}
	if r.LimiteCredito.IsNegative() {
		return "limiteCredito must not be negative"
	}
	if r.TipoPersona != model.TipoPersonaFisica && r.TipoPersona != model.TipoPersonaJuridica {
		return "tipoPersona must be Física or Jurídica"
	}
	return ""
}

// ListClientes handles retrieving all clients
func ListClientes(c echo.Context) error {
	log := logger.FromContext(c)

	var clientes []model.Cliente
	result := database.GetDB().Order("created_at DESC").Find(&clientes)
	if result.Error != nil {
		log.Error("Failed to list clientes", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve clientes",
		})
	}

	return c.JSON(http.StatusOK, clientes)
}

// GetCliente handles retrieving a single client by ID
func GetCliente(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid cliente id"})
	}

	var cliente model.Cliente
	result := database.GetDB().First(&cliente, "id = ?", id)
	if result.Error != nil {
		log.Warn("Cliente not found", zap.String("cliente_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Cliente not found",
		})
	}

	return c.JSON(http.StatusOK, cliente)
}

// CreateCliente handles creating a new client
func CreateCliente(c echo.Context) error {
	log := logger.FromContext(c)

	var req ClienteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if msg := req.Validate(); msg != "" {
		log.Warn("Cliente validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	cliente := model.Cliente{
		Nombre:        req.Nombre,
		Cedula:        req.Cedula,
		TarjetaCR:     req.TarjetaCR,
		LimiteCredito: req.LimiteCredito,
		TipoPersona:   req.TipoPersona,
		Estado:        true,
	}

	result := database.GetDB().Create(&cliente)
	if result.Error != nil {
		log.Error("Failed to create cliente", zap.String("nombre", req.Nombre), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create cliente",
		})
	}

	prometheus.RecordEntityOperation("clientes", "create")
	log.Info("Cliente created successfully",
		zap.String("cliente_id", cliente.ID.String()),
		zap.String("nombre", cliente.Nombre))
	return c.JSON(http.StatusCreated, cliente)
}

// UpdateCliente handles updating an existing client
func UpdateCliente(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid cliente id"})
	}

	var req ClienteRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if msg := req.Validate(); msg != "" {
		log.Warn("Cliente validation failed", zap.String("reason", msg))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	var cliente model.Cliente
	result := database.GetDB().First(&cliente, "id = ?", id)
	if result.Error != nil {
		log.Warn("Cliente not found for update", zap.String("cliente_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Cliente not found",
		})
	}

	cliente.Nombre = req.Nombre
	cliente.Cedula = req.Cedula
	cliente.TarjetaCR = req.TarjetaCR
	cliente.LimiteCredito = req.LimiteCredito
	cliente.TipoPersona = req.TipoPersona
	if req.Estado != nil {
		cliente.Estado = *req.Estado
	}

	result = database.GetDB().Save(&cliente)
	if result.Error != nil {
		log.Error("Failed to update cliente", zap.String("cliente_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update cliente",
		})
	}

	prometheus.RecordEntityOperation("clientes", "update")
	return c.JSON(http.StatusOK, cliente)
}

// DeleteCliente handles deleting a client
func DeleteCliente(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid cliente id"})
	}

	result := database.GetDB().Delete(&model.Cliente{}, "id = ?", id)
	if result.Error != nil {
		log.Error("Failed to delete cliente", zap.String("cliente_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete cliente",
		})
	}

	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Cliente not found",
		})
	}

	prometheus.RecordEntityOperation("clientes", "delete")
	log.Info("Cliente deleted successfully", zap.String("cliente_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Cliente eliminado",
	})
}

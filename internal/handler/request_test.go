package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentcar-service/internal/model"
)

func TestClienteRequest_Validate(t *testing.T) {
	valid := ClienteRequest{
		Nombre:        "Juan Pérez",
		Cedula:        "00197965304",
		TarjetaCR:     "4111111111111111",
		LimiteCredito: decimal.NewFromInt(50000),
		TipoPersona:   model.TipoPersonaFisica,
	}

	tests := []struct {
		name    string
		mutate  func(r *ClienteRequest)
		wantMsg string
	}{
		{
			name:    "valid request",
			mutate:  func(r *ClienteRequest) {},
			wantMsg: "",
		},
		{
			name:    "juridical person",
			mutate:  func(r *ClienteRequest) { r.TipoPersona = model.TipoPersonaJuridica },
			wantMsg: "",
		},
		{
			name:    "missing nombre",
			mutate:  func(r *ClienteRequest) { r.Nombre = "" },
			wantMsg: "nombre is required",
		},
		{
			name:    "bad cedula check digit",
			mutate:  func(r *ClienteRequest) { r.Cedula = "00197965305" },
			wantMsg: "cedula is not valid",
		},
		{
			name:    "negative credit limit",
			mutate:  func(r *ClienteRequest) { r.LimiteCredito = decimal.NewFromInt(-1) },
			wantMsg: "limiteCredito must not be negative",
		},
		{
			name:    "unknown tipoPersona",
			mutate:  func(r *ClienteRequest) { r.TipoPersona = "Empresa" },
			wantMsg: "tipoPersona must be Física or Jurídica",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Equal(t, tt.wantMsg, req.Validate())
		})
	}
}

func TestEmpleadoRequest_Validate(t *testing.T) {
	valid := EmpleadoRequest{
		Nombre:            "María Gómez",
		Cedula:            "00114791932",
		TandaLabor:        "Matutina",
		PorcientoComision: decimal.NewFromFloat(7.5),
		FechaIngreso:      "2023-06-15",
	}

	t.Run("valid request parses hire date", func(t *testing.T) {
		req := valid
		fecha, msg := req.Validate()
		require.Empty(t, msg)
		assert.Equal(t, 2023, fecha.Year())
		assert.Equal(t, 15, fecha.Day())
	})

	tests := []struct {
		name    string
		mutate  func(r *EmpleadoRequest)
		wantMsg string
	}{
		{
			name:    "missing nombre",
			mutate:  func(r *EmpleadoRequest) { r.Nombre = "" },
			wantMsg: "nombre is required",
		},
		{
			name:    "invalid cedula",
			mutate:  func(r *EmpleadoRequest) { r.Cedula = "123" },
			wantMsg: "cedula is not valid",
		},
		{
			name:    "commission above 100",
			mutate:  func(r *EmpleadoRequest) { r.PorcientoComision = decimal.NewFromInt(101) },
			wantMsg: "porcientoComision must be between 0 and 100",
		},
		{
			name:    "negative commission",
			mutate:  func(r *EmpleadoRequest) { r.PorcientoComision = decimal.NewFromInt(-5) },
			wantMsg: "porcientoComision must be between 0 and 100",
		},
		{
			name:    "hire date wrong format",
			mutate:  func(r *EmpleadoRequest) { r.FechaIngreso = "15/06/2023" },
			wantMsg: "fechaIngreso must be a date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, msg := req.Validate()
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestVehiculoRequest_Validate(t *testing.T) {
	valid := VehiculoRequest{
		Descripcion:       "Toyota Corolla 2022",
		NoChasis:          "CH-001",
		NoMotor:           "MT-001",
		NoPlaca:           "A123456",
		TipoVehiculoID:    uuid.New(),
		MarcaID:           uuid.New(),
		ModeloID:          uuid.New(),
		TipoCombustibleID: uuid.New(),
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.Empty(t, req.Validate())
	})

	t.Run("missing descripcion", func(t *testing.T) {
		req := valid
		req.Descripcion = ""
		assert.Equal(t, "descripcion is required", req.Validate())
	})

	t.Run("missing identifiers", func(t *testing.T) {
		req := valid
		req.NoPlaca = ""
		assert.Equal(t, "noChasis, noMotor and noPlaca are required", req.Validate())
	})

	t.Run("missing references", func(t *testing.T) {
		req := valid
		req.ModeloID = uuid.Nil
		assert.Equal(t, "tipoVehiculoId, marcaId, modeloId and tipoCombustibleId are required", req.Validate())
	})
}

func TestInspeccionRequest_Validate(t *testing.T) {
	valid := InspeccionRequest{
		VehiculoID:       uuid.New(),
		ClienteID:        uuid.New(),
		EmpleadoID:       uuid.New(),
		NivelCombustible: model.NivelMedio,
		EstadoGomas:      "Buenas",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.Empty(t, req.Validate())
	})

	t.Run("each fuel level accepted", func(t *testing.T) {
		for _, nivel := range []string{model.NivelLleno, model.NivelTresCuarto, model.NivelMedio, model.NivelCuarto} {
			req := valid
			req.NivelCombustible = nivel
			assert.Empty(t, req.Validate(), "nivel %q", nivel)
		}
	})

	t.Run("unknown fuel level", func(t *testing.T) {
		req := valid
		req.NivelCombustible = "Vacío"
		assert.Equal(t, "nivelCombustible must be one of Lleno, 3/4, Medio, 1/4", req.Validate())
	})

	t.Run("missing references", func(t *testing.T) {
		req := valid
		req.ClienteID = uuid.Nil
		assert.Equal(t, "vehiculoId, clienteId and empleadoId are required", req.Validate())
	})
}

func newFilterContext(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/reportes?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParseFilter(t *testing.T) {
	clienteID := uuid.New()
	vehiculoID := uuid.New()

	t.Run("empty query yields empty filter", func(t *testing.T) {
		filter, err := parseFilter(newFilterContext(t, ""))
		require.NoError(t, err)
		assert.Nil(t, filter.FechaInicio)
		assert.Nil(t, filter.FechaFin)
		assert.Equal(t, uuid.Nil, filter.ClienteID)
		assert.Equal(t, uuid.Nil, filter.VehiculoID)
		assert.Empty(t, filter.Estado)
		assert.Empty(t, filter.TipoVehiculo)
	})

	t.Run("all parameters", func(t *testing.T) {
		query := "fechaInicio=2024-01-01&fechaFin=2024-01-31" +
			"&clienteId=" + clienteID.String() +
			"&vehiculoId=" + vehiculoID.String() +
			"&estado=Activa&tipoVehiculo=Sedan"
		filter, err := parseFilter(newFilterContext(t, query))
		require.NoError(t, err)
		require.NotNil(t, filter.FechaInicio)
		require.NotNil(t, filter.FechaFin)
		assert.Equal(t, "2024-01-01", filter.FechaInicio.Format("2006-01-02"))
		assert.Equal(t, "2024-01-31", filter.FechaFin.Format("2006-01-02"))
		assert.Equal(t, clienteID, filter.ClienteID)
		assert.Equal(t, vehiculoID, filter.VehiculoID)
		assert.Equal(t, model.EstadoActiva, filter.Estado)
		assert.Equal(t, "Sedan", filter.TipoVehiculo)
	})

	t.Run("malformed start date", func(t *testing.T) {
		_, err := parseFilter(newFilterContext(t, "fechaInicio=01-01-2024"))
		assert.EqualError(t, err, "fechaInicio must be a date in YYYY-MM-DD format")
	})

	t.Run("malformed end date", func(t *testing.T) {
		_, err := parseFilter(newFilterContext(t, "fechaFin=enero"))
		assert.EqualError(t, err, "fechaFin must be a date in YYYY-MM-DD format")
	})

	t.Run("malformed client id", func(t *testing.T) {
		_, err := parseFilter(newFilterContext(t, "clienteId=abc"))
		assert.EqualError(t, err, "clienteId is not a valid id")
	})

	t.Run("malformed vehicle id", func(t *testing.T) {
		_, err := parseFilter(newFilterContext(t, "vehiculoId=abc"))
		assert.EqualError(t, err, "vehiculoId is not a valid id")
	})
}

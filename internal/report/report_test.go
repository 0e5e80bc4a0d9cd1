package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentcar-service/internal/model"
	"rentcar-service/internal/report"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func buildRenta(fecha time.Time, estado model.EstadoRenta, monto string, dias int, tipoVehiculo string) model.Renta {
	return model.Renta{
		ID:           uuid.New(),
		ClienteID:    uuid.New(),
		VehiculoID:   uuid.New(),
		EmpleadoID:   uuid.New(),
		FechaRenta:   fecha,
		MontoPorDia:  decimal.RequireFromString(monto),
		CantidadDias: dias,
		Estado:       estado,
		Vehiculo: &model.Vehiculo{
			Descripcion:  "Corolla",
			NoPlaca:      "A123456",
			TipoVehiculo: &model.TipoVehiculo{Descripcion: tipoVehiculo},
		},
		Cliente: &model.Cliente{Nombre: "Juan Pérez"},
	}
}

func sampleRentas() []model.Renta {
	return []model.Renta{
		buildRenta(date(2024, 1, 1), model.EstadoActiva, "50", 4, "Automóvil"),
		buildRenta(date(2024, 1, 15), model.EstadoDevuelta, "80", 2, "SUV"),
		buildRenta(date(2024, 2, 1), model.EstadoDevuelta, "100", 3, "Automóvil"),
		buildRenta(date(2024, 3, 10), model.EstadoCancelada, "60", 5, "Pickup"),
	}
}

func Test_Filter_Apply(t *testing.T) {
	rentas := sampleRentas()

	tests := []struct {
		name   string
		filter report.Filter
		want   int
	}{
		{name: "no_filters_returns_all", filter: report.Filter{}, want: 4},
		{name: "fecha_inicio_inclusive", filter: report.Filter{FechaInicio: datePtr(2024, 1, 15)}, want: 3},
		{name: "fecha_fin_inclusive", filter: report.Filter{FechaFin: datePtr(2024, 1, 15)}, want: 2},
		{name: "date_range", filter: report.Filter{FechaInicio: datePtr(2024, 1, 2), FechaFin: datePtr(2024, 2, 28)}, want: 2},
		{name: "estado_activa", filter: report.Filter{Estado: model.EstadoActiva}, want: 1},
		{name: "estado_devuelta", filter: report.Filter{Estado: model.EstadoDevuelta}, want: 2},
		{name: "tipo_vehiculo", filter: report.Filter{TipoVehiculo: "Automóvil"}, want: 2},
		{name: "tipo_vehiculo_no_match", filter: report.Filter{TipoVehiculo: "Furgoneta"}, want: 0},
		{name: "and_composition", filter: report.Filter{Estado: model.EstadoDevuelta, TipoVehiculo: "Automóvil"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.filter.Apply(rentas), tt.want)
		})
	}
}

func Test_Filter_ByClienteAndVehiculo(t *testing.T) {
	rentas := sampleRentas()

	byCliente := report.Filter{ClienteID: rentas[0].ClienteID}.Apply(rentas)
	require.Len(t, byCliente, 1)
	assert.Equal(t, rentas[0].ID, byCliente[0].ID)

	byVehiculo := report.Filter{VehiculoID: rentas[2].VehiculoID}.Apply(rentas)
	require.Len(t, byVehiculo, 1)
	assert.Equal(t, rentas[2].ID, byVehiculo[0].ID)
}

// Estado filters partition the set: Activa and Devuelta subsets are disjoint
// and together never exceed the total (Cancelada stays outside both).
func Test_Filter_EstadoSubsetsDisjoint(t *testing.T) {
	rentas := sampleRentas()

	activas := report.Filter{Estado: model.EstadoActiva}.Apply(rentas)
	devueltas := report.Filter{Estado: model.EstadoDevuelta}.Apply(rentas)

	seen := make(map[uuid.UUID]bool)
	for _, r := range activas {
		seen[r.ID] = true
	}
	for _, r := range devueltas {
		assert.False(t, seen[r.ID], "subsets must be disjoint")
	}
	assert.LessOrEqual(t, len(activas)+len(devueltas), len(rentas))
}

func Test_Filter_MissingRelations(t *testing.T) {
	bare := model.Renta{FechaRenta: date(2024, 1, 1), Estado: model.EstadoActiva, MontoPorDia: decimal.NewFromInt(10), CantidadDias: 1}

	// Without a preloaded vehicle the tipo filter cannot match.
	assert.Empty(t, report.Filter{TipoVehiculo: "SUV"}.Apply([]model.Renta{bare}))
	// Other filters still work.
	assert.Len(t, report.Filter{Estado: model.EstadoActiva}.Apply([]model.Renta{bare}), 1)
}

func Test_Summarize(t *testing.T) {
	stats := report.Summarize(sampleRentas())

	assert.Equal(t, 4, stats.TotalRentas)
	assert.Equal(t, 1, stats.RentasActivas)
	assert.Equal(t, 2, stats.RentasDevueltas)
	// 50*4 + 80*2 + 100*3 + 60*5 = 960
	assert.True(t, stats.IngresoTotal.Equal(decimal.RequireFromString("960")),
		"got %s", stats.IngresoTotal)
}

func Test_Summarize_Empty(t *testing.T) {
	stats := report.Summarize(nil)

	assert.Equal(t, 0, stats.TotalRentas)
	assert.Equal(t, 0, stats.RentasActivas)
	assert.Equal(t, 0, stats.RentasDevueltas)
	assert.True(t, stats.IngresoTotal.IsZero())
}

// Filtering and summarizing are pure; applying them twice yields the same result.
func Test_FilterAndSummarize_Idempotent(t *testing.T) {
	rentas := sampleRentas()
	filter := report.Filter{Estado: model.EstadoDevuelta}

	first := filter.Apply(rentas)
	second := filter.Apply(rentas)
	assert.Equal(t, first, second)
	assert.Equal(t, report.Summarize(first), report.Summarize(second))
}

func Test_RenderPDF(t *testing.T) {
	rentas := sampleRentas()
	stats := report.Summarize(rentas)

	var buf bytes.Buffer
	err := report.RenderPDF(&buf, rentas, stats, date(2024, 4, 1))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should be a PDF document")
}

func Test_RenderPDF_EmptySubset(t *testing.T) {
	var buf bytes.Buffer
	err := report.RenderPDF(&buf, nil, report.Summarize(nil), date(2024, 4, 1))
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

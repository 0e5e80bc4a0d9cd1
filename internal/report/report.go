// Package report filters the rental records and computes the summary
// statistics shown on the reporting screen. Everything here is pure: filters
// and stats are recomputed from the input slice on every call.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"rentcar-service/internal/model"
)

// Filter is the report filter specification. Zero-valued fields are ignored;
// set fields are combined with logical AND.
type Filter struct {
	FechaInicio  *time.Time
	FechaFin     *time.Time
	ClienteID    uuid.UUID
	VehiculoID   uuid.UUID
	Estado       model.EstadoRenta
	TipoVehiculo string
}

// Stats are the four summary figures over a filtered subset.
type Stats struct {
	TotalRentas     int             `json:"totalRentas"`
	RentasActivas   int             `json:"rentasActivas"`
	RentasDevueltas int             `json:"rentasDevueltas"`
	IngresoTotal    decimal.Decimal `json:"ingresoTotal"`
}

// Apply returns the subset of rentas matching every set filter field. Date
// bounds are inclusive. The input slice is never modified.
func (f Filter) Apply(rentas []model.Renta) []model.Renta {
	filtered := make([]model.Renta, 0, len(rentas))
	for _, r := range rentas {
		if f.matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (f Filter) matches(r model.Renta) bool {
	if f.FechaInicio != nil && r.FechaRenta.Before(*f.FechaInicio) {
		return false
	}
	if f.FechaFin != nil && r.FechaRenta.After(*f.FechaFin) {
		return false
	}
	if f.ClienteID != uuid.Nil && r.ClienteID != f.ClienteID {
		return false
	}
	if f.VehiculoID != uuid.Nil && r.VehiculoID != f.VehiculoID {
		return false
	}
	if f.Estado != "" && r.Estado != f.Estado {
		return false
	}
	if f.TipoVehiculo != "" {
		if r.Vehiculo == nil || r.Vehiculo.TipoVehiculo == nil {
			return false
		}
		if r.Vehiculo.TipoVehiculo.Descripcion != f.TipoVehiculo {
			return false
		}
	}
	return true
}

// Summarize computes the stats over the given subset.
func Summarize(rentas []model.Renta) Stats {
	stats := Stats{IngresoTotal: decimal.Zero}
	for _, r := range rentas {
		stats.TotalRentas++
		switch r.Estado {
		case model.EstadoActiva:
			stats.RentasActivas++
		case model.EstadoDevuelta:
			stats.RentasDevueltas++
		}
		stats.IngresoTotal = stats.IngresoTotal.Add(r.Total())
	}
	return stats
}

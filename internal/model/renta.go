package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstadoRenta is the rental state, persisted as its Spanish display string.
type EstadoRenta string

const (
	EstadoActiva    EstadoRenta = "Activa"
	EstadoDevuelta  EstadoRenta = "Devuelta"
	EstadoCancelada EstadoRenta = "Cancelada"
)

// Renta represents a vehicle rental. The total cost is always derived from
// MontoPorDia and CantidadDias; it is never stored.
type Renta struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpleadoID      uuid.UUID       `json:"empleadoId" gorm:"type:uuid;index;not null"`
	VehiculoID      uuid.UUID       `json:"vehiculoId" gorm:"type:uuid;index;not null"`
	ClienteID       uuid.UUID       `json:"clienteId" gorm:"type:uuid;index;not null"`
	FechaRenta      time.Time       `json:"fechaRenta" gorm:"not null"`
	FechaDevolucion *time.Time      `json:"fechaDevolucion"`
	MontoPorDia     decimal.Decimal `json:"montoPorDia" gorm:"type:decimal(10,2);not null"`
	CantidadDias    int             `json:"cantidadDias" gorm:"not null"`
	Comentario      string          `json:"comentario"`
	Estado          EstadoRenta     `json:"estado" gorm:"type:varchar(16);index;not null"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	Vehiculo *Vehiculo `json:"vehiculo,omitempty" gorm:"foreignKey:VehiculoID"`
	Cliente  *Cliente  `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
	Empleado *Empleado `json:"empleado,omitempty" gorm:"foreignKey:EmpleadoID"`
}

func (Renta) TableName() string { return "rentas" }

// Total returns MontoPorDia × CantidadDias rounded to 2 decimal places.
func (r *Renta) Total() decimal.Decimal {
	return r.MontoPorDia.Mul(decimal.NewFromInt(int64(r.CantidadDias))).Round(2)
}

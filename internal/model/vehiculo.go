package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehiculo represents a fleet vehicle. Estado doubles as the availability flag.
//
// Note: MarcaID and ModeloID are independent references; nothing checks that the
// chosen model actually belongs to the chosen brand.
type Vehiculo struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion       string    `json:"descripcion" gorm:"not null"`
	NoChasis          string    `json:"noChasis" gorm:"uniqueIndex;not null"`
	NoMotor           string    `json:"noMotor" gorm:"uniqueIndex;not null"`
	NoPlaca           string    `json:"noPlaca" gorm:"uniqueIndex;not null"`
	TipoVehiculoID    uuid.UUID `json:"tipoVehiculoId" gorm:"type:uuid;index;not null"`
	MarcaID           uuid.UUID `json:"marcaId" gorm:"type:uuid;index;not null"`
	ModeloID          uuid.UUID `json:"modeloId" gorm:"type:uuid;index;not null"`
	TipoCombustibleID uuid.UUID `json:"tipoCombustibleId" gorm:"type:uuid;index;not null"`
	Estado            bool      `json:"estado" gorm:"not null;default:true"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	TipoVehiculo    *TipoVehiculo    `json:"tipoVehiculo,omitempty" gorm:"foreignKey:TipoVehiculoID"`
	Marca           *Marca           `json:"marca,omitempty" gorm:"foreignKey:MarcaID"`
	Modelo          *Modelo          `json:"modelo,omitempty" gorm:"foreignKey:ModeloID"`
	TipoCombustible *TipoCombustible `json:"tipoCombustible,omitempty" gorm:"foreignKey:TipoCombustibleID"`
}

func (Vehiculo) TableName() string { return "vehiculos" }

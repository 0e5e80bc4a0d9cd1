package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoVehiculo is the vehicle-type catalog (Automóvil, SUV, ...).
// Descripcion is unique across active and inactive rows alike.
type TipoVehiculo struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion string    `json:"descripcion" gorm:"uniqueIndex;not null"`
	Estado      bool      `json:"estado" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (TipoVehiculo) TableName() string { return "tipos_vehiculos" }

// TipoCombustible is the fuel-type catalog (Gasolina, Gasoil, ...).
type TipoCombustible struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion string    `json:"descripcion" gorm:"uniqueIndex;not null"`
	Estado      bool      `json:"estado" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (TipoCombustible) TableName() string { return "tipos_combustible" }

// Marca is the vehicle brand catalog.
type Marca struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion string    `json:"descripcion" gorm:"uniqueIndex;not null"`
	Estado      bool      `json:"estado" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Marca) TableName() string { return "marcas" }

// Modelo is the vehicle model catalog; every model belongs to a brand.
type Modelo struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MarcaID     uuid.UUID `json:"marcaId" gorm:"type:uuid;index;not null"`
	Descripcion string    `json:"descripcion" gorm:"uniqueIndex;not null"`
	Estado      bool      `json:"estado" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Marca *Marca `json:"marca,omitempty" gorm:"foreignKey:MarcaID"`
}

func (Modelo) TableName() string { return "modelos" }

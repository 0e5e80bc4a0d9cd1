package model

import (
	"time"

	"github.com/google/uuid"
)

// Fuel levels recorded during an inspection.
const (
	NivelLleno      = "Lleno"
	NivelTresCuarto = "3/4"
	NivelMedio      = "Medio"
	NivelCuarto     = "1/4"
)

// Inspeccion records the vehicle condition checks done at handover.
type Inspeccion struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID         uuid.UUID `json:"vehiculoId" gorm:"type:uuid;index;not null"`
	ClienteID          uuid.UUID `json:"clienteId" gorm:"type:uuid;index;not null"`
	EmpleadoID         uuid.UUID `json:"empleadoId" gorm:"type:uuid;index;not null"`
	TieneRalladuras    bool      `json:"tieneRalladuras" gorm:"not null;default:false"`
	NivelCombustible   string    `json:"nivelCombustible" gorm:"not null"`
	TieneGomaRespuesta bool      `json:"tieneGomaRespuesta" gorm:"not null;default:false"`
	TieneGato          bool      `json:"tieneGato" gorm:"not null;default:false"`
	EstadoGomas        string    `json:"estadoGomas"`
	Observaciones      string    `json:"observaciones"`
	Fecha              time.Time `json:"fecha" gorm:"not null"`
	Estado             bool      `json:"estado" gorm:"not null;default:true"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	Vehiculo *Vehiculo `json:"vehiculo,omitempty" gorm:"foreignKey:VehiculoID"`
	Cliente  *Cliente  `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
	Empleado *Empleado `json:"empleado,omitempty" gorm:"foreignKey:EmpleadoID"`
}

func (Inspeccion) TableName() string { return "inspecciones" }

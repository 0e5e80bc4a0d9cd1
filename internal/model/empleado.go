package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Empleado represents a back-office employee who registers rentals.
type Empleado struct {
	ID                uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre            string          `json:"nombre" gorm:"not null"`
	Cedula            string          `json:"cedula" gorm:"not null"`
	TandaLabor        string          `json:"tandaLabor"`
	PorcientoComision decimal.Decimal `json:"porcientoComision" gorm:"type:decimal(5,2);not null"`
	FechaIngreso      time.Time       `json:"fechaIngreso" gorm:"not null"`
	Estado            bool            `json:"estado" gorm:"not null;default:true"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (Empleado) TableName() string { return "empleados" }

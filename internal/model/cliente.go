package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoPersona distinguishes natural persons from juridical ones.
const (
	TipoPersonaFisica   = "Física"
	TipoPersonaJuridica = "Jurídica"
)

// Cliente represents a rental customer.
type Cliente struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string          `json:"nombre" gorm:"not null"`
	Cedula        string          `json:"cedula" gorm:"not null"`
	TarjetaCR     string          `json:"tarjetaCR"`
	LimiteCredito decimal.Decimal `json:"limiteCredito" gorm:"type:decimal(10,2);not null"`
	TipoPersona   string          `json:"tipoPersona" gorm:"not null"`
	Estado        bool            `json:"estado" gorm:"not null;default:true"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (Cliente) TableName() string { return "clientes" }

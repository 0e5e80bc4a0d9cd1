package database

import (
	"fmt"

	"gorm.io/gorm/clause"

	"rentcar-service/internal/model"
)

// Seed inserts the baseline catalog rows. Descriptions already present are
// left untouched, so seeding is safe to run on every startup.
func Seed() error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}

	tiposVehiculos := []string{"Automóvil", "Camioneta", "SUV", "Furgoneta", "Pickup"}
	for _, descripcion := range tiposVehiculos {
		row := model.TipoVehiculo{Descripcion: descripcion, Estado: true}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "descripcion"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed tipo de vehículo %q: %w", descripcion, err)
		}
	}

	tiposCombustible := []string{"Gasolina", "Gasoil", "Gas Natural", "Eléctrico", "Híbrido"}
	for _, descripcion := range tiposCombustible {
		row := model.TipoCombustible{Descripcion: descripcion, Estado: true}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "descripcion"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed tipo de combustible %q: %w", descripcion, err)
		}
	}

	marcas := []string{"Toyota", "Honda", "Kia", "Hyundai", "Ford", "Chevrolet", "Nissan"}
	for _, descripcion := range marcas {
		row := model.Marca{Descripcion: descripcion, Estado: true}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "descripcion"}},
			DoNothing: true,
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed marca %q: %w", descripcion, err)
		}
	}

	return nil
}

package renta

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentcar-service/internal/model"
)

// ErrNotFound is returned when a rental id does not exist.
var ErrNotFound = errors.New("renta not found")

// Repo is the persistence contract the lifecycle service depends on.
type Repo interface {
	Create(ctx context.Context, r *model.Renta) error
	Save(ctx context.Context, r *model.Renta) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Renta, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Renta, error)
}

// GormRepo implements Repo on top of GORM. Reads expand the vehicle (with its
// catalogs), client and employee relations, matching what the screens consume.
type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

func (r *GormRepo) withPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Vehiculo").
		Preload("Vehiculo.Marca").
		Preload("Vehiculo.Modelo").
		Preload("Vehiculo.TipoVehiculo").
		Preload("Vehiculo.TipoCombustible").
		Preload("Cliente").
		Preload("Empleado")
}

func (r *GormRepo) Create(ctx context.Context, renta *model.Renta) error {
	if err := r.db.WithContext(ctx).Create(renta).Error; err != nil {
		return err
	}
	// Reload with relations so the caller gets the expanded record
	return r.withPreloads(r.db.WithContext(ctx)).First(renta, "id = ?", renta.ID).Error
}

func (r *GormRepo) Save(ctx context.Context, renta *model.Renta) error {
	return r.db.WithContext(ctx).Save(renta).Error
}

func (r *GormRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Renta, error) {
	var renta model.Renta
	err := r.withPreloads(r.db.WithContext(ctx)).First(&renta, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &renta, nil
}

func (r *GormRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Renta{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) List(ctx context.Context) ([]model.Renta, error) {
	var rentas []model.Renta
	err := r.withPreloads(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Find(&rentas).Error
	if err != nil {
		return nil, err
	}
	return rentas, nil
}

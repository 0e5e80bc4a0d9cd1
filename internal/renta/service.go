package renta

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"rentcar-service/internal/model"
)

// Validation errors surfaced to callers as rejected operations.
var (
	ErrVehiculoRequired = errors.New("vehiculoId is required")
	ErrClienteRequired  = errors.New("clienteId is required")
	ErrEmpleadoRequired = errors.New("empleadoId is required")
	ErrMontoInvalido    = errors.New("montoPorDia must be greater than zero")
	ErrDiasInvalidos    = errors.New("cantidadDias must be at least 1")
)

// Service implements the rental lifecycle on top of an injected Repo, so it
// stays independent of the HTTP layer and testable against a fake store.
type Service struct {
	repo Repo
	log  *zap.Logger
}

func NewService(repo Repo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// CreateInput carries the fields of the rental creation request.
type CreateInput struct {
	VehiculoID   uuid.UUID
	ClienteID    uuid.UUID
	EmpleadoID   uuid.UUID
	FechaRenta   time.Time
	MontoPorDia  decimal.Decimal
	CantidadDias int
	Comentario   string
}

// UpdateInput carries the fields of the raw rental update request. Estado and
// FechaDevolucion are applied as-is; nothing checks the current state first.
type UpdateInput struct {
	FechaDevolucion *time.Time
	Estado          model.EstadoRenta
	Comentario      string
}

// Create persists a new rental in state Activa with no return date. Vehicle
// availability is not checked here; that remains the caller's lookout.
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Renta, error) {
	if in.VehiculoID == uuid.Nil {
		return nil, ErrVehiculoRequired
	}
	if in.ClienteID == uuid.Nil {
		return nil, ErrClienteRequired
	}
	if in.EmpleadoID == uuid.Nil {
		return nil, ErrEmpleadoRequired
	}
	if !in.MontoPorDia.IsPositive() {
		return nil, ErrMontoInvalido
	}
	if in.CantidadDias < 1 {
		return nil, ErrDiasInvalidos
	}

	renta := &model.Renta{
		VehiculoID:   in.VehiculoID,
		ClienteID:    in.ClienteID,
		EmpleadoID:   in.EmpleadoID,
		FechaRenta:   in.FechaRenta,
		MontoPorDia:  in.MontoPorDia,
		CantidadDias: in.CantidadDias,
		Comentario:   in.Comentario,
		Estado:       model.EstadoActiva,
	}

	if err := s.repo.Create(ctx, renta); err != nil {
		return nil, err
	}
	return renta, nil
}

// ProcessReturn marks a rental as Devuelta, stamping the return date and
// overwriting the comment. A rental that is no longer Activa is still
// overwritten (the legacy screens allowed it); it is logged so product can
// decide whether to close that hole.
func (s *Service) ProcessReturn(ctx context.Context, id uuid.UUID, fechaDevolucion time.Time, comentario string) (*model.Renta, error) {
	renta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(renta.Estado, model.EstadoDevuelta) {
		s.log.Warn("processing return for a rental that is not active",
			zap.String("renta_id", id.String()),
			zap.String("estado", string(renta.Estado)))
	}

	fecha := fechaDevolucion
	renta.FechaDevolucion = &fecha
	renta.Comentario = comentario
	renta.Estado = model.EstadoDevuelta

	if err := s.repo.Save(ctx, renta); err != nil {
		return nil, err
	}
	return renta, nil
}

// Update applies the raw update body to the rental. This mirrors the legacy
// PUT endpoint: the state and return date are overwritten unconditionally.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.Renta, error) {
	renta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Estado != "" && !CanTransition(renta.Estado, in.Estado) {
		s.log.Warn("rental update skips the state rules",
			zap.String("renta_id", id.String()),
			zap.String("from", string(renta.Estado)),
			zap.String("to", string(in.Estado)))
	}

	renta.FechaDevolucion = in.FechaDevolucion
	if in.Estado != "" {
		renta.Estado = in.Estado
	}
	renta.Comentario = in.Comentario

	if err := s.repo.Save(ctx, renta); err != nil {
		return nil, err
	}
	return renta, nil
}

// Cancel removes the rental permanently, whatever its state. The screens only
// offer cancellation for active rentals but the delete itself is unconditional.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Renta, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]model.Renta, error) {
	return s.repo.List(ctx)
}

package renta

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentcar-service/internal/model"
)

// fakeRepo is an in-memory Repo for service tests.
type fakeRepo struct {
	rentas map[uuid.UUID]model.Renta
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rentas: make(map[uuid.UUID]model.Renta)}
}

func (f *fakeRepo) Create(_ context.Context, r *model.Renta) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.rentas[r.ID] = *r
	return nil
}

func (f *fakeRepo) Save(_ context.Context, r *model.Renta) error {
	if _, ok := f.rentas[r.ID]; !ok {
		return ErrNotFound
	}
	f.rentas[r.ID] = *r
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Renta, error) {
	r, ok := f.rentas[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := r
	return &copied, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rentas[id]; !ok {
		return ErrNotFound
	}
	delete(f.rentas, id)
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]model.Renta, error) {
	out := make([]model.Renta, 0, len(f.rentas))
	for _, r := range f.rentas {
		out = append(out, r)
	}
	return out, nil
}

func validInput() CreateInput {
	return CreateInput{
		VehiculoID:   uuid.New(),
		ClienteID:    uuid.New(),
		EmpleadoID:   uuid.New(),
		FechaRenta:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MontoPorDia:  decimal.RequireFromString("50"),
		CantidadDias: 4,
	}
}

func Test_Service_Create(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	renta, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, model.EstadoActiva, renta.Estado)
	assert.Nil(t, renta.FechaDevolucion)
	assert.True(t, renta.Total().Equal(decimal.RequireFromString("200")))
}

func Test_Service_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr error
	}{
		{name: "missing_vehiculo", mutate: func(in *CreateInput) { in.VehiculoID = uuid.Nil }, wantErr: ErrVehiculoRequired},
		{name: "missing_cliente", mutate: func(in *CreateInput) { in.ClienteID = uuid.Nil }, wantErr: ErrClienteRequired},
		{name: "missing_empleado", mutate: func(in *CreateInput) { in.EmpleadoID = uuid.Nil }, wantErr: ErrEmpleadoRequired},
		{name: "zero_monto", mutate: func(in *CreateInput) { in.MontoPorDia = decimal.Zero }, wantErr: ErrMontoInvalido},
		{name: "negative_monto", mutate: func(in *CreateInput) { in.MontoPorDia = decimal.RequireFromString("-1") }, wantErr: ErrMontoInvalido},
		{name: "zero_dias", mutate: func(in *CreateInput) { in.CantidadDias = 0 }, wantErr: ErrDiasInvalidos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo(), nil)
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_Service_ProcessReturn(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	fecha := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	returned, err := svc.ProcessReturn(context.Background(), created.ID, fecha, "sin novedades")
	require.NoError(t, err)

	assert.Equal(t, model.EstadoDevuelta, returned.Estado)
	require.NotNil(t, returned.FechaDevolucion)
	assert.True(t, returned.FechaDevolucion.Equal(fecha))
	assert.Equal(t, "sin novedades", returned.Comentario)
}

// The legacy behavior is preserved: returning an already returned rental
// succeeds and overwrites the previous return date and comment.
func Test_Service_ProcessReturn_Twice_Overwrites(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	first := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	_, err = svc.ProcessReturn(context.Background(), created.ID, first, "primera")
	require.NoError(t, err)

	second := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	returned, err := svc.ProcessReturn(context.Background(), created.ID, second, "segunda")
	require.NoError(t, err)

	assert.Equal(t, model.EstadoDevuelta, returned.Estado)
	require.NotNil(t, returned.FechaDevolucion)
	assert.True(t, returned.FechaDevolucion.Equal(second))
	assert.Equal(t, "segunda", returned.Comentario)
}

func Test_Service_ProcessReturn_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.ProcessReturn(context.Background(), uuid.New(), time.Now(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Service_Cancel(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Cancellation deletes regardless of state; the screens only offer it for
// active rentals but the operation itself does not check.
func Test_Service_Cancel_ReturnedRental_StillDeletes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	_, err = svc.ProcessReturn(context.Background(), created.ID, time.Now(), "")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), created.ID))
	assert.Empty(t, repo.rentas)
}

func Test_Service_Update_OverwritesUnconditionally(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	fecha := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
		FechaDevolucion: &fecha,
		Estado:          model.EstadoDevuelta,
		Comentario:      "entregada",
	})
	require.NoError(t, err)
	assert.Equal(t, model.EstadoDevuelta, updated.Estado)

	// A second update moves it straight back to Activa, state rules or not.
	updated, err = svc.Update(context.Background(), created.ID, UpdateInput{Estado: model.EstadoActiva})
	require.NoError(t, err)
	assert.Equal(t, model.EstadoActiva, updated.Estado)
	assert.Nil(t, updated.FechaDevolucion)
}

func Test_Service_EndToEnd(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	in := validInput()
	in.MontoPorDia = decimal.RequireFromString("50")
	in.CantidadDias = 4

	created, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, model.EstadoActiva, created.Estado)
	assert.Nil(t, created.FechaDevolucion)
	assert.True(t, created.Total().Equal(decimal.RequireFromString("200")))

	fecha := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	returned, err := svc.ProcessReturn(context.Background(), created.ID, fecha, "")
	require.NoError(t, err)
	assert.Equal(t, model.EstadoDevuelta, returned.Estado)
	require.NotNil(t, returned.FechaDevolucion)
	assert.True(t, returned.FechaDevolucion.Equal(fecha))
}

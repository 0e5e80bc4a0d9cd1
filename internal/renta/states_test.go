package renta

import (
	"testing"

	"rentcar-service/internal/model"
)

func TestCanTransition(t *testing.T) {
	if !CanTransition(model.EstadoActiva, model.EstadoDevuelta) {
		t.Fatalf("expected Activa -> Devuelta allowed")
	}
	if !CanTransition(model.EstadoActiva, model.EstadoCancelada) {
		t.Fatalf("expected Activa -> Cancelada allowed")
	}
	if CanTransition(model.EstadoDevuelta, model.EstadoActiva) {
		t.Fatalf("expected Devuelta -> Activa not allowed")
	}
	if CanTransition(model.EstadoCancelada, model.EstadoDevuelta) {
		t.Fatalf("expected Cancelada -> Devuelta not allowed")
	}
	if !CanTransition(model.EstadoActiva, model.EstadoActiva) {
		t.Fatalf("expected self transition allowed")
	}
	if CanTransition(model.EstadoRenta("Pendiente"), model.EstadoActiva) {
		t.Fatalf("expected unknown state to have no transitions")
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(model.EstadoActiva) {
		t.Fatalf("expected Activa to be non-terminal")
	}
	if !IsTerminal(model.EstadoDevuelta) {
		t.Fatalf("expected Devuelta to be terminal")
	}
	if !IsTerminal(model.EstadoCancelada) {
		t.Fatalf("expected Cancelada to be terminal")
	}
	if IsTerminal(model.EstadoRenta("Pendiente")) {
		t.Fatalf("expected unknown state to not report terminal")
	}
}

package renta

import "rentcar-service/internal/model"

// allowTransition defines the rental state graph: a rental starts Activa and
// ends Devuelta or Cancelada. Terminal states have no outgoing edges.
var allowTransition = map[model.EstadoRenta][]model.EstadoRenta{
	model.EstadoActiva:    {model.EstadoDevuelta, model.EstadoCancelada},
	model.EstadoDevuelta:  {},
	model.EstadoCancelada: {},
}

// CanTransition reports whether from -> to is an allowed state change.
func CanTransition(from, to model.EstadoRenta) bool {
	if from == to {
		return true
	}
	allowed, ok := allowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a state has no outgoing transitions.
func IsTerminal(estado model.EstadoRenta) bool {
	allowed, ok := allowTransition[estado]
	return ok && len(allowed) == 0
}

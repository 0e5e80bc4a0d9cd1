package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rentcar-service/internal/model"
)

func Test_Renta_Total(t *testing.T) {
	tests := []struct {
		name        string
		montoPorDia string
		dias        int
		want        string
	}{
		{name: "round_amount", montoPorDia: "50.00", dias: 3, want: "150"},
		{name: "single_day", montoPorDia: "1250.50", dias: 1, want: "1250.5"},
		{name: "fractional_rate", montoPorDia: "33.33", dias: 3, want: "99.99"},
		{name: "rounding_to_two_places", montoPorDia: "0.333", dias: 3, want: "1"},
		{name: "zero_days", montoPorDia: "99.99", dias: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.Renta{
				MontoPorDia:  decimal.RequireFromString(tt.montoPorDia),
				CantidadDias: tt.dias,
			}
			assert.True(t, r.Total().Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", r.Total(), tt.want)
		})
	}
}

package cedula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rentcar-service/pkg/cedula"
)

func Test_Validate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid_plain", input: "00100001072", want: true},
		{name: "valid_with_hyphens", input: "001-0000107-2", want: true},
		{name: "valid_with_spaces", input: "001 0000107 2", want: true},
		{name: "valid_mixed_separators", input: " 001-00001-07 2 ", want: true},
		{name: "valid_second_vector", input: "00114791932", want: true},
		{name: "valid_all_zero_payload", input: "00000000000", want: true},
		{name: "valid_high_series", input: "40200000012", want: true},
		{name: "valid_sequential_payload", input: "12345678903", want: true},
		{name: "valid_other_series", input: "22500123454", want: true},
		{name: "wrong_check_digit", input: "00100001073", want: false},
		{name: "wrong_check_digit_real_looking", input: "00114791935", want: false},
		{name: "too_short", input: "0010000107", want: false},
		{name: "too_long", input: "001000010721", want: false},
		{name: "empty", input: "", want: false},
		{name: "only_separators", input: "--- ---", want: false},
		{name: "letters", input: "0010000107a", want: false},
		{name: "letters_after_cleaning", input: "001-0000107-x", want: false},
		{name: "unicode_digits_rejected", input: "٠٠١٠٠٠٠١٠٧٢", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cedula.Validate(tt.input))
		})
	}
}

// Both weight mappings (x1 and x2 with digit-sum reduction) are injective mod 10,
// so changing any single digit of a valid cédula must invalidate it.
func Test_Validate_SingleDigitMutations(t *testing.T) {
	valid := "00197965304"
	if !cedula.Validate(valid) {
		t.Fatalf("test vector %s should be valid", valid)
	}

	for pos := 0; pos < len(valid); pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if valid[pos] == d {
				continue
			}
			mutated := valid[:pos] + string(d) + valid[pos+1:]
			assert.False(t, cedula.Validate(mutated), "mutation at %d to %c should be invalid", pos, d)
		}
	}
}

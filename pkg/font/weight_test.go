package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightToNumber(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"Thin", 100},
		{"Hairline", 100},
		{"ExtraLight", 200},
		{"Extra Light", 200},
		{"UltraLight", 200},
		{"Light", 300},
		{"Light Italic", 300},
		{"Regular", 400},
		{"Normal", 400},
		{"Book", 400},
		{"Roman", 400},
		{"Medium", 500},
		{"SemiBold", 600},
		{"Semi Bold", 600},
		{"DemiBold", 600},
		{"Bold", 700},
		{"BOLD", 700},
		{"Black", 900},
		{"Heavy", 900},
		{"650", 650},
		{"Weight 300", 300},
		{"", 400},
		{"Italic", 400},
		{"Condensed", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightToNumber(tt.name))
		})
	}
}

func TestWeightToNumberDeclarationOrder(t *testing.T) {
	// "bold" is declared before "extrabold", so the generic token wins.
	assert.Equal(t, 700, WeightToNumber("ExtraBold"))
	assert.Equal(t, 700, WeightToNumber("Ultra Bold"))
	// "extralight" is declared before "light".
	assert.Equal(t, 200, WeightToNumber("ExtraLight Italic"))
}

func TestWeightToNumberStaysOnScale(t *testing.T) {
	inputs := []string{"0", "50", "1000", "99999999999999999999999", "w-1", "Black 950", "x", "🙂"}
	for _, in := range inputs {
		w := WeightToNumber(in)
		assert.GreaterOrEqual(t, w, MinWeight, "input %q", in)
		assert.LessOrEqual(t, w, MaxWeight, "input %q", in)
	}
}

func TestWeightToNumberClampsOverflowingNumerals(t *testing.T) {
	assert.Equal(t, MaxWeight, WeightToNumber("99999999999999999999"))
	assert.Equal(t, MaxWeight, WeightToNumber("99999999999999999999 Bold"))
	assert.Equal(t, MaxWeight, WeightToNumber("1000"))
	assert.Equal(t, MinWeight, WeightToNumber("0"))
}

func TestWeightToNumberIsPure(t *testing.T) {
	for _, in := range []string{"Bold", "Semi Bold", "650", "unknown"} {
		assert.Equal(t, WeightToNumber(in), WeightToNumber(in))
	}
}

package lease

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCharges(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `150`, 150},
		{"decimal", `87.5`, 87.5},
		{"numeric string", `"150"`, 150},
		{"numeric string with spaces", `" 42.5 "`, 42.5},
		{"amount object", `{"amount": 120}`, 120},
		{"value object", `{"value": "95"}`, 95},
		{"amount wins over value", `{"amount": 60, "value": 99}`, 60},
		{"empty", ``, 0},
		{"null", `null`, 0},
		{"garbage string", `"abc"`, 0},
		{"wrong object keys", `{"monthly": 80}`, 0},
		{"array", `[150]`, 0},
		{"boolean", `true`, 0},
		{"malformed json", `{`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCharges([]byte(tt.raw)))
		})
	}
}

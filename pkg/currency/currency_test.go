package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain integer", input: "1000", want: 1000},
		{name: "peso sign with thousands dots", input: "$1.234.567", want: 1234567},
		{name: "thousands and decimal comma", input: "45.000,50", want: 45000.5},
		{name: "sign and spaces", input: "$ 250.000", want: 250000},
		{name: "decimal comma only", input: "12,5", want: 12.5},
		{name: "empty", input: "", want: 0},
		{name: "garbage", input: "pendiente", want: 0},
		{name: "double comma is unparseable", input: "1,2,3", want: 0},
		{name: "negative value", input: "-50.000", want: -50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

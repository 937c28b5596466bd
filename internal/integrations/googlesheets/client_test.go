package googlesheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		index int64
		want  string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnLetter(tt.index), "index %d", tt.index)
	}
}

func TestParseRowIndex(t *testing.T) {
	tests := []struct {
		name         string
		updatedRange string
		want         int64
		wantErr      bool
	}{
		{
			name:         "single cell range",
			updatedRange: "Facturacion!A42:F42",
			want:         42,
		},
		{
			name:         "one cell",
			updatedRange: "Transacciones!B7",
			want:         7,
		},
		{
			name:         "takes the last number",
			updatedRange: "Facturacion!A1:F120",
			want:         120,
		},
		{
			name:         "no numbers",
			updatedRange: "Facturacion!A:F",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRowIndex(tt.updatedRange)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

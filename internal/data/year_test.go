package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYear_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Year
		wantErr error
	}{
		{name: "number", input: `1984`, want: 1984},
		{name: "numeric string", input: `"1984"`, want: 1984},
		{name: "padded string", input: `" 2001 "`, want: 2001},
		{name: "empty string", input: `""`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "word", input: `"nineteen"`, wantErr: ErrInvalidYearFormat},
		{name: "fraction", input: `1984.5`, wantErr: ErrInvalidYearFormat},
		{name: "bool", input: `true`, wantErr: ErrInvalidYearFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y Year
			err := y.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, y)
		})
	}
}

func TestYear_MarshalsAsNumber(t *testing.T) {
	js, err := json.Marshal(Movie{ID: 1, Title: "Dune", Year: 1984, Director: "Lynch", Description: "spice"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"Dune","year":1984,"director":"Lynch","description":"spice"}`, string(js))
}

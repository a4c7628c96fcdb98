package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResume_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"with filename", "jane_doe.pdf", "jane_doe.pdf"},
		{"empty filename", "", "Unknown Filename"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resume{Filename: tt.filename}
			assert.Equal(t, tt.want, r.DisplayName())
		})
	}
}

func TestResume_RawTextNotSerialized(t *testing.T) {
	r := Resume{Filename: "jane.pdf", RawText: "full resume body"}

	data, err := json.Marshal(r)

	require.NoError(t, err)
	assert.NotContains(t, string(data), "full resume body")
}

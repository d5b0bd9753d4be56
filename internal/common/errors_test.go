package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := NewUserError("could not open the export file", cause)

		assert.Equal(t, "could not open the export file: permission denied", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without cause", func(t *testing.T) {
		err := NewUserError("no files found to import", nil)
		assert.Equal(t, "no files found to import", err.Error())
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "debug", input: "debug"},
		{name: "info", input: "info"},
		{name: "empty defaults to info", input: ""},
		{name: "warn", input: "warn"},
		{name: "warning alias", input: "warning"},
		{name: "error", input: "error"},
		{name: "mixed case", input: "DEBUG"},
		{name: "unknown", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{"light", Light, false},
		{"dark", Dark, false},
		{" DARK ", Dark, false},
		{"Light", Light, false},
		{"", Default, true},
		{"solarized", Default, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Light.Toggle())
	assert.Equal(t, Light, Dark.Toggle())
	assert.Equal(t, Light, Light.Toggle().Toggle())
	assert.Equal(t, Dark, Default)
}

func TestNewStyles(t *testing.T) {
	dark := NewStyles(Dark, 32)
	light := NewStyles(Light, 32)

	assert.Equal(t, DarkPalette(), dark.Palette)
	assert.Equal(t, LightPalette(), light.Palette)
	assert.NotEqual(t, dark.Palette.Card, light.Palette.Card)
	assert.Equal(t, 32, dark.Column.GetWidth())
	assert.Equal(t, 28, dark.Card.GetWidth())

	narrow := NewStyles(Dark, 2)
	assert.Equal(t, 1, narrow.Card.GetWidth())
}

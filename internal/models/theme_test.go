package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeColorValid(t *testing.T) {
	for _, color := range ThemeColors() {
		assert.True(t, color.Valid(), "color %s should be valid", color)
	}
	assert.False(t, ThemeColor("magenta").Valid())
	assert.False(t, ThemeColor("").Valid())
}

func TestThemeColorPaletteResolvesEveryMember(t *testing.T) {
	seen := make(map[string]bool)
	for _, color := range ThemeColors() {
		p := color.Palette()
		assert.NotEmpty(t, p.Bg)
		assert.NotEmpty(t, p.Text)
		assert.NotEmpty(t, p.Light)
		assert.NotEmpty(t, p.Ring)
		assert.NotEmpty(t, p.Border)
		assert.False(t, seen[p.Bg], "palette for %s duplicates another theme", color)
		seen[p.Bg] = true
	}
}

func TestThemeColorPaletteUnknownFallsBackToIndigo(t *testing.T) {
	assert.Equal(t, ThemeIndigo.Palette(), ThemeColor("magenta").Palette())
}

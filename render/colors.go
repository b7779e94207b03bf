package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shoot/core"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPlayer     = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbBullet     = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbAsteroid   = tcell.NewRGBColor(180, 180, 180) // Gray
	RgbBorder     = tcell.NewRGBColor(60, 60, 80)    // Dim slate
	RgbScore      = tcell.NewRGBColor(0, 255, 255)   // Cyan
	RgbPrompt     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Red
)

// Glyph and color per entity kind
var kindGlyph = map[core.Kind]rune{
	core.KindPlayer:   '█',
	core.KindBullet:   '•',
	core.KindAsteroid: '#',
}

func kindColor(k core.Kind) tcell.Color {
	switch k {
	case core.KindPlayer:
		return RgbPlayer
	case core.KindBullet:
		return RgbBullet
	case core.KindAsteroid:
		return RgbAsteroid
	default:
		return tcell.ColorWhite
	}
}

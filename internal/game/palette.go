// internal/game/palette.go
//
// Color data and palette selection for the round engine.
//
// Responsibilities:
//   - Hold the global color set and the fixed color → category mapping.
//   - Draw a uniformly random palette subset per round / reshuffle.
//
// The category mapping is many-to-one and never changes at runtime; it is
// the source of truth for the adjacency rule in grid generation.

package game

import "math/rand"

// ColorNeutral is the placeholder used when a grid must be produced from
// an empty palette. Generation never fails.
const ColorNeutral Color = "gray"

const (
	ColorRed    Color = "red"
	ColorPink   Color = "pink"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorBrown  Color = "brown"
	ColorGreen  Color = "green"
	ColorMint   Color = "mint"
	ColorTeal   Color = "teal"
	ColorCyan   Color = "cyan"
	ColorBlue   Color = "blue"
	ColorIndigo Color = "indigo"
	ColorPurple Color = "purple"
)

// AllColors is the global color set palettes are drawn from.
var AllColors = []Color{
	ColorRed, ColorPink, ColorOrange, ColorYellow, ColorBrown, ColorGreen,
	ColorMint, ColorTeal, ColorCyan, ColorBlue, ColorIndigo, ColorPurple,
}

var categories = map[Color]Category{
	ColorRed:    CategoryWarmRed,
	ColorPink:   CategoryWarmRed,
	ColorOrange: CategoryWarmYellow,
	ColorYellow: CategoryWarmYellow,
	ColorBrown:  CategoryWarmYellow,
	ColorGreen:  CategoryGreen,
	ColorMint:   CategoryGreen,
	ColorTeal:   CategoryBlue,
	ColorCyan:   CategoryBlue,
	ColorBlue:   CategoryBlue,
	ColorIndigo: CategoryPurple,
	ColorPurple: CategoryPurple,
}

// ColorCategory returns the perceptual bucket for a color.
// Unknown colors (including ColorNeutral) map to CategoryNeutral.
func ColorCategory(c Color) Category {
	if cat, ok := categories[c]; ok {
		return cat
	}
	return CategoryNeutral
}

// SelectPalette draws a random subset of size min(n, len(colors)) from
// colors, without repetition. The input slice is not modified. Successive
// calls are independent draws; the effective palette is expected to shift
// between reshuffles within a round.
func SelectPalette(rng *rand.Rand, colors []Color, n int) []Color {
	if n > len(colors) {
		n = len(colors)
	}
	if n <= 0 {
		return nil
	}
	shuffled := make([]Color, len(colors))
	copy(shuffled, colors)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

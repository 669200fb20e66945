package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestBuildGrid_SizeAndMembership(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		p := ProfileFor(d)
		rng := testRng(1)
		palette := SelectPalette(rng, AllColors, p.ColorCount)
		grid := BuildGrid(rng, palette, p.CellCount, p.ColumnCount, p.AdjacencyAware)

		require.Len(t, grid, p.CellCount, "difficulty %s", d)
		inPalette := make(map[Color]bool, len(palette))
		for _, c := range palette {
			inPalette[c] = true
		}
		for i, c := range grid {
			assert.True(t, inPalette[c], "difficulty %s cell %d has color %s outside palette", d, i, c)
		}
	}
}

func TestBuildGrid_EmptyPaletteFallsBackToNeutral(t *testing.T) {
	grid := BuildGrid(testRng(1), nil, 9, 3, true)
	require.Len(t, grid, 9)
	for _, c := range grid {
		assert.Equal(t, ColorNeutral, c)
	}
}

func TestBuildGrid_AdjacencyConstraint(t *testing.T) {
	// The guarantee needs a palette spanning at least three categories
	// (left + top neighbors exclude at most two); with fewer the generator
	// falls back to the full palette rather than failing.
	palette := []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple}
	for seed := int64(0); seed < 50; seed++ {
		rng := testRng(seed)
		p := ProfileFor(DifficultyMedium)
		grid := BuildGrid(rng, palette, p.CellCount, p.ColumnCount, true)
		cols := p.ColumnCount
		for i := range grid {
			if i%cols != 0 {
				assert.NotEqual(t, ColorCategory(grid[i-1]), ColorCategory(grid[i]),
					"seed %d: cell %d matches left neighbor category", seed, i)
			}
			if i >= cols {
				assert.NotEqual(t, ColorCategory(grid[i-cols]), ColorCategory(grid[i]),
					"seed %d: cell %d matches top neighbor category", seed, i)
			}
		}
	}
}

func TestPartialReshuffle_ChangesAtMostCountCells(t *testing.T) {
	rng := testRng(7)
	p := ProfileFor(DifficultyEasy)
	palette := SelectPalette(rng, AllColors, p.ColorCount)
	grid := BuildGrid(rng, palette, p.CellCount, p.ColumnCount, true)

	before := make([]Color, len(grid))
	copy(before, grid)
	PartialReshuffle(rng, grid, palette, p.ColumnCount, 3, true)

	changed := 0
	for i := range grid {
		if grid[i] != before[i] {
			changed++
		}
	}
	// Replacements may redraw the same color, so changed ≤ count.
	assert.LessOrEqual(t, changed, 3)
	assert.Len(t, grid, p.CellCount)
}

func TestPartialReshuffle_CountClampedToGridSize(t *testing.T) {
	rng := testRng(3)
	palette := SelectPalette(rng, AllColors, 3)
	grid := BuildGrid(rng, palette, 4, 2, false)
	out := PartialReshuffle(rng, grid, palette, 2, 99, false)
	assert.Len(t, out, 4)
}

func TestPartialReshuffle_RespectsAllFourNeighbors(t *testing.T) {
	// Four neighbors can exclude up to four categories, so only a palette
	// covering all five guarantees a constrained replacement exists.
	palette := []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple}
	for seed := int64(0); seed < 50; seed++ {
		rng := testRng(seed)
		p := ProfileFor(DifficultyMedium)
		grid := BuildGrid(rng, palette, p.CellCount, p.ColumnCount, true)
		PartialReshuffle(rng, grid, palette, p.ColumnCount, 3, true)

		cols := p.ColumnCount
		for i := range grid {
			for _, n := range []int{i - 1, i + 1, i - cols, i + cols} {
				if n < 0 || n >= len(grid) {
					continue
				}
				if (n == i-1 && i%cols == 0) || (n == i+1 && i%cols == cols-1) {
					continue
				}
				assert.NotEqual(t, ColorCategory(grid[n]), ColorCategory(grid[i]),
					"seed %d: cells %d and %d share a category", seed, i, n)
			}
		}
	}
}

func TestPartialReshuffle_EmptyGridOrPaletteIsNoop(t *testing.T) {
	rng := testRng(1)
	assert.Empty(t, PartialReshuffle(rng, nil, []Color{ColorRed}, 3, 3, true))

	grid := []Color{ColorRed, ColorBlue}
	out := PartialReshuffle(rng, grid, nil, 2, 3, true)
	assert.Equal(t, []Color{ColorRed, ColorBlue}, out)
}

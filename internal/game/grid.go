// internal/game/grid.go
//
// Grid generation for the round engine.
//
// Grids are flat []Color slices in row-major order: index = row*cols + col.
// Two generation modes:
//   - independent: every cell is a uniform draw from the palette.
//   - adjacency-aware: no cell shares a category with its already-placed
//     left/top neighbor (initial build) or with any of its four current
//     neighbors (partial reshuffle). When no palette color satisfies the
//     constraint the full palette is used instead of failing.
//
// An empty palette yields a grid of ColorNeutral. Generation never fails.

package game

import "math/rand"

// defaultReshuffleCount is how many cells a partial reshuffle replaces
// after a correct match.
const defaultReshuffleCount = 3

// BuildGrid produces an initial tile layout of exactly cellCount colors.
func BuildGrid(rng *rand.Rand, palette []Color, cellCount, cols int, adjacencyAware bool) []Color {
	grid := make([]Color, cellCount)
	if len(palette) == 0 {
		for i := range grid {
			grid[i] = ColorNeutral
		}
		return grid
	}
	if !adjacencyAware {
		for i := range grid {
			grid[i] = palette[rng.Intn(len(palette))]
		}
		return grid
	}
	// Row-major fill: only the left and top neighbors exist yet.
	for i := range grid {
		var exclude []Category
		if i%cols != 0 {
			exclude = append(exclude, ColorCategory(grid[i-1]))
		}
		if i >= cols {
			exclude = append(exclude, ColorCategory(grid[i-cols]))
		}
		grid[i] = pickColor(rng, palette, exclude)
	}
	return grid
}

// PartialReshuffle replaces min(count, len(grid)) distinct random cells
// with fresh palette draws and returns the same slice. In adjacency-aware
// mode each replacement is constrained against the cell's current four
// neighbors, a broader rule than the initial left/top-only build.
func PartialReshuffle(rng *rand.Rand, grid []Color, palette []Color, cols, count int, adjacencyAware bool) []Color {
	if len(grid) == 0 {
		return grid
	}
	if len(palette) == 0 {
		return grid
	}
	if count > len(grid) {
		count = len(grid)
	}
	for _, i := range rng.Perm(len(grid))[:count] {
		if !adjacencyAware {
			grid[i] = palette[rng.Intn(len(palette))]
			continue
		}
		grid[i] = pickColor(rng, palette, neighborCategories(grid, cols, i))
	}
	return grid
}

// neighborCategories collects the categories of the (up to four) cells
// adjacent to index i.
func neighborCategories(grid []Color, cols, i int) []Category {
	var cats []Category
	if i%cols != 0 {
		cats = append(cats, ColorCategory(grid[i-1]))
	}
	if i%cols != cols-1 && i+1 < len(grid) {
		cats = append(cats, ColorCategory(grid[i+1]))
	}
	if i >= cols {
		cats = append(cats, ColorCategory(grid[i-cols]))
	}
	if i+cols < len(grid) {
		cats = append(cats, ColorCategory(grid[i+cols]))
	}
	return cats
}

// pickColor draws uniformly from the palette colors whose category is not
// in exclude. Falls back to the full palette when nothing qualifies.
func pickColor(rng *rand.Rand, palette []Color, exclude []Category) Color {
	candidates := make([]Color, 0, len(palette))
	for _, c := range palette {
		if !containsCategory(exclude, ColorCategory(c)) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = palette
	}
	return candidates[rng.Intn(len(candidates))]
}

func containsCategory(cats []Category, c Category) bool {
	for _, x := range cats {
		if x == c {
			return true
		}
	}
	return false
}

// internal/game/difficulty.go
//
// Static difficulty configuration. Each tier maps to a fixed profile:
// palette size, grid dimensions, round duration, and whether grid
// generation is adjacency-aware. The hardest tier deliberately drops the
// adjacency constraint so similar colors can touch.

package game

// Profile is the immutable configuration for one difficulty tier.
type Profile struct {
	ColorCount     int  // distinct palette colors drawn per round
	CellCount      int  // total tiles in the grid
	ColumnCount    int  // tiles per row
	RoundSeconds   int  // starting timer value
	AdjacencyAware bool // keep neighboring tiles in different categories
}

var profiles = map[Difficulty]Profile{
	DifficultyEasy:   {ColorCount: 3, CellCount: 9, ColumnCount: 3, RoundSeconds: 60, AdjacencyAware: true},
	DifficultyMedium: {ColorCount: 6, CellCount: 16, ColumnCount: 4, RoundSeconds: 45, AdjacencyAware: true},
	DifficultyHard:   {ColorCount: 9, CellCount: 25, ColumnCount: 5, RoundSeconds: 30, AdjacencyAware: false},
}

// ProfileFor returns the profile for a tier. Unknown tiers fall back to
// easy; Difficulty.Valid is checked at the API boundary.
func ProfileFor(d Difficulty) Profile {
	if p, ok := profiles[d]; ok {
		return p
	}
	return profiles[DifficultyEasy]
}

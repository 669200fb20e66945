package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveUnlocks(t *testing.T) {
	tests := []struct {
		name  string
		round Round
		want  []Kind
	}{
		{
			name:  "untouched round",
			round: Round{},
			want:  nil,
		},
		{
			name:  "first point",
			round: Round{Score: 1, CorrectStreak: 1},
			want:  []Kind{KindFirstGame},
		},
		{
			name:  "streak of three",
			round: Round{Score: 3, CorrectStreak: 3},
			want:  []Kind{KindFirstGame, KindThreeCombo},
		},
		{
			name:  "score thresholds stack",
			round: Round{Score: 25, CorrectStreak: 1},
			want:  []Kind{KindFirstGame, KindScore10, KindScore25},
		},
		{
			name:  "all score tiers",
			round: Round{Score: 50, CorrectStreak: 7},
			want:  []Kind{KindFirstGame, KindScore10, KindScore25, KindScore50, KindThreeCombo},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LiveUnlocks(&tt.round))
		})
	}
}

func TestEndUnlocks(t *testing.T) {
	tests := []struct {
		name  string
		round Round
		want  []Kind
	}{
		{
			name:  "no input unlocks nothing, even flawless-looking rounds",
			round: Round{Difficulty: DifficultyHard, Status: StatusEnded},
			want:  nil,
		},
		{
			name:  "flawless easy",
			round: Round{Difficulty: DifficultyEasy, HadInput: true, Status: StatusEnded},
			want:  []Kind{KindFlawlessEasy},
		},
		{
			name:  "flawless medium",
			round: Round{Difficulty: DifficultyMedium, HadInput: true, Status: StatusEnded},
			want:  []Kind{KindFlawlessMedium},
		},
		{
			name:  "flawless hard plus cleared",
			round: Round{Difficulty: DifficultyHard, HadInput: true, Status: StatusEnded},
			want:  []Kind{KindFlawlessHard, KindHardCleared},
		},
		{
			name:  "hard with misses still counts as cleared",
			round: Round{Difficulty: DifficultyHard, HadInput: true, WrongStreak: 2, Status: StatusEnded},
			want:  []Kind{KindHardCleared},
		},
		{
			name:  "easy with trailing miss is not flawless",
			round: Round{Difficulty: DifficultyEasy, HadInput: true, WrongStreak: 1, Status: StatusEnded},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndUnlocks(&tt.round))
		})
	}
}

func TestCatalog_CoversEveryKindOnce(t *testing.T) {
	seen := make(map[Kind]bool)
	for _, info := range Catalog() {
		assert.False(t, seen[info.Kind], "duplicate kind %s", info.Kind)
		seen[info.Kind] = true
		assert.NotEmpty(t, info.Title)
		assert.NotEmpty(t, info.Detail)
	}
	for _, k := range []Kind{
		KindFirstGame, KindScore10, KindScore25, KindScore50, KindThreeCombo,
		KindFlawlessEasy, KindFlawlessMedium, KindFlawlessHard, KindHardCleared,
	} {
		assert.True(t, seen[k], "kind %s missing from catalog", k)
	}
}

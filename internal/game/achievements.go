// internal/game/achievements.go
//
// Achievement kinds, the canonical catalog, and the stateless unlock
// predicates. Predicates only inspect the live round; idempotence of the
// actual unlock is the achievement store's job.

package game

// Kind identifies one achievement in the fixed catalog.
type Kind string

const (
	KindFirstGame      Kind = "first_game"
	KindScore10        Kind = "score_10"
	KindScore25        Kind = "score_25"
	KindScore50        Kind = "score_50"
	KindThreeCombo     Kind = "three_combo"
	KindFlawlessEasy   Kind = "flawless_easy"
	KindFlawlessMedium Kind = "flawless_medium"
	KindFlawlessHard   Kind = "flawless_hard"
	KindHardCleared    Kind = "hard_cleared"
)

// AchievementInfo is one catalog entry: presentation metadata for a kind.
type AchievementInfo struct {
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Icon   string `json:"icon"`
}

// Catalog returns the full achievement catalog in display order.
func Catalog() []AchievementInfo {
	return []AchievementInfo{
		{Kind: KindFirstGame, Title: "First Steps", Detail: "Score your first point", Icon: "star"},
		{Kind: KindScore10, Title: "Warming Up", Detail: "Reach 10 points in a round", Icon: "flame"},
		{Kind: KindScore25, Title: "Sharp Eye", Detail: "Reach 25 points in a round", Icon: "eye"},
		{Kind: KindScore50, Title: "Color Master", Detail: "Reach 50 points in a round", Icon: "crown"},
		{Kind: KindThreeCombo, Title: "Combo", Detail: "Hit 3 correct tiles in a row", Icon: "bolt"},
		{Kind: KindFlawlessEasy, Title: "Flawless: Easy", Detail: "Finish an easy round without a miss", Icon: "shield"},
		{Kind: KindFlawlessMedium, Title: "Flawless: Medium", Detail: "Finish a medium round without a miss", Icon: "shield-half"},
		{Kind: KindFlawlessHard, Title: "Flawless: Hard", Detail: "Finish a hard round without a miss", Icon: "shield-star"},
		{Kind: KindHardCleared, Title: "Into the Deep", Detail: "Play a hard round to its end", Icon: "mountain"},
	}
}

// LiveUnlocks evaluates the predicates checked after every mutating event
// while the round is active.
func LiveUnlocks(r *Round) []Kind {
	var kinds []Kind
	if r.Score >= 1 {
		kinds = append(kinds, KindFirstGame)
	}
	if r.Score >= 10 {
		kinds = append(kinds, KindScore10)
	}
	if r.Score >= 25 {
		kinds = append(kinds, KindScore25)
	}
	if r.Score >= 50 {
		kinds = append(kinds, KindScore50)
	}
	if r.CorrectStreak >= 3 {
		kinds = append(kinds, KindThreeCombo)
	}
	return kinds
}

// EndUnlocks evaluates the round-end-only predicates. All of them require
// at least one input: an untouched round unlocks nothing, including on the
// explicit-exit path.
func EndUnlocks(r *Round) []Kind {
	if !r.HadInput {
		return nil
	}
	var kinds []Kind
	if r.WrongStreak == 0 {
		switch r.Difficulty {
		case DifficultyEasy:
			kinds = append(kinds, KindFlawlessEasy)
		case DifficultyMedium:
			kinds = append(kinds, KindFlawlessMedium)
		case DifficultyHard:
			kinds = append(kinds, KindFlawlessHard)
		}
	}
	if r.Difficulty == DifficultyHard {
		kinds = append(kinds, KindHardCleared)
	}
	return kinds
}

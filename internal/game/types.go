// internal/game/types.go
//
// Core type definitions for the colordash round engine.
// Defines:
//   - Color / Category: tile colors and their perceptual buckets.
//   - Difficulty: the closed tier enumeration (easy/medium/hard).
//   - Round: state for a single in-progress or finished round.
//   - Event: engine notifications consumed by the presentation layer.

package game

// Color is a named tile color. The value is the color's wire name.
type Color string

// Category is a coarse perceptual bucket for visually similar colors.
// Adjacency-aware grid generation keeps neighboring tiles in different
// categories so low-difficulty boards stay readable.
type Category string

const (
	CategoryWarmRed    Category = "warm-red"
	CategoryWarmYellow Category = "warm-yellow"
	CategoryGreen      Category = "green"
	CategoryBlue       Category = "blue"
	CategoryPurple     Category = "purple"
	CategoryNeutral    Category = "neutral"
)

// Difficulty identifies one of the three fixed tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Status is the round lifecycle state. Setup is instantaneous, so a Round
// is only ever observed as active or ended.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// EndReason records how a round reached StatusEnded.
type EndReason string

const (
	EndReasonTimeout EndReason = "timeout"
	EndReasonExit    EndReason = "exit"
)

// Round holds the state of a single play session. It is owned exclusively
// by the engine; callers read it but never mutate it directly.
type Round struct {
	ID            string     // Unique round identifier (random hex string).
	Difficulty    Difficulty // Tier the round was started with.
	Grid          []Color    // Tile colors in row-major order, length = cellCount.
	Target        Color      // Color the player must tap; always present in Grid.
	Score         int        // Current score, never negative.
	TimeLeft      int        // Remaining seconds, never negative.
	CorrectStreak int        // Consecutive correct taps.
	WrongStreak   int        // Consecutive wrong taps.
	HadInput      bool       // True once any tap was received.
	Status        Status     // active → ended, exactly once.
	EndReason     EndReason  // Set when Status == StatusEnded.
}

// EventType tags engine notifications.
type EventType string

const (
	EventScoreChanged EventType = "score_changed"
	EventTimeChanged  EventType = "time_changed"
	EventBonus        EventType = "bonus"
	EventPenalty      EventType = "penalty"
	EventRoundEnded   EventType = "round_ended"
	// EventAchievementUnlocked is emitted by the session layer once the
	// achievement store confirms the unlock is new.
	EventAchievementUnlocked EventType = "achievement_unlocked"
)

// Event is a single engine notification. Only the fields relevant to the
// event type are populated.
type Event struct {
	Type        EventType `json:"type"`
	Score       int       `json:"score"`                 // score_changed, round_ended; zero is meaningful
	TimeLeft    int       `json:"timeLeft"`              // time_changed; zero is meaningful
	Seconds     int       `json:"seconds,omitempty"`     // bonus (+), penalty (−)
	Reason      EndReason `json:"reason,omitempty"`      // round_ended
	Achievement Kind      `json:"achievement,omitempty"` // achievement_unlocked
}

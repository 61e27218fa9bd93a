package models

// Stage is one of the three board columns an item can occupy.
// Stages are ordered left to right: Todo, In Progress, Done.
type Stage int

const (
	StageTodo       Stage = iota // Work not yet started
	StageInProgress              // Work being done
	StageDone                    // Finished work
)

// stageNames holds the display name of each stage, indexed by Stage
var stageNames = [...]string{
	StageTodo:       "Todo",
	StageInProgress: "In Progress",
	StageDone:       "Done",
}

// Stages returns every stage in board order
func Stages() []Stage {
	return []Stage{StageTodo, StageInProgress, StageDone}
}

// Valid reports whether s is one of the known stages
func (s Stage) Valid() bool {
	return s >= StageTodo && s <= StageDone
}

// String returns the column title for the stage
func (s Stage) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return stageNames[s]
}

// Next returns the stage to the right of s.
// The second value is false when s is already the last stage.
func (s Stage) Next() (Stage, bool) {
	if !s.Valid() || s == StageDone {
		return s, false
	}
	return s + 1, true
}

// Prev returns the stage to the left of s.
// The second value is false when s is already the first stage.
func (s Stage) Prev() (Stage, bool) {
	if !s.Valid() || s == StageTodo {
		return s, false
	}
	return s - 1, true
}

// AdjacentTo reports whether other sits directly beside s on the board
func (s Stage) AdjacentTo(other Stage) bool {
	if !s.Valid() || !other.Valid() {
		return false
	}
	d := int(s) - int(other)
	return d == 1 || d == -1
}

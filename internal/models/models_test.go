package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrNoNextStage, "item is already in the last stage"},
		{ErrNoPrevStage, "item is already in the first stage"},
		{ErrItemNotFound, "item not found"},
		{ErrInvalidStage, "invalid stage"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrNoNextStage, ErrNoPrevStage) {
		t.Error("ErrNoNextStage should not equal ErrNoPrevStage")
	}
}

// ============================================================================
// Stage Tests
// ============================================================================

func TestStage_String(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageTodo, "Todo"},
		{StageInProgress, "In Progress"},
		{StageDone, "Done"},
		{Stage(7), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestStage_NextPrev(t *testing.T) {
	if next, ok := StageTodo.Next(); !ok || next != StageInProgress {
		t.Errorf("Todo.Next() = %v, %v; want InProgress, true", next, ok)
	}
	if next, ok := StageInProgress.Next(); !ok || next != StageDone {
		t.Errorf("InProgress.Next() = %v, %v; want Done, true", next, ok)
	}
	if _, ok := StageDone.Next(); ok {
		t.Error("Done.Next() should report no next stage")
	}

	if prev, ok := StageDone.Prev(); !ok || prev != StageInProgress {
		t.Errorf("Done.Prev() = %v, %v; want InProgress, true", prev, ok)
	}
	if prev, ok := StageInProgress.Prev(); !ok || prev != StageTodo {
		t.Errorf("InProgress.Prev() = %v, %v; want Todo, true", prev, ok)
	}
	if _, ok := StageTodo.Prev(); ok {
		t.Error("Todo.Prev() should report no previous stage")
	}
}

func TestStage_AdjacentTo(t *testing.T) {
	if !StageTodo.AdjacentTo(StageInProgress) {
		t.Error("Todo should be adjacent to In Progress")
	}
	if !StageDone.AdjacentTo(StageInProgress) {
		t.Error("Done should be adjacent to In Progress")
	}
	if StageTodo.AdjacentTo(StageDone) {
		t.Error("Todo should not be adjacent to Done")
	}
	if StageTodo.AdjacentTo(StageTodo) {
		t.Error("a stage should not be adjacent to itself")
	}
	if StageTodo.AdjacentTo(Stage(-1)) {
		t.Error("invalid stages are never adjacent")
	}
}

func TestStages_Order(t *testing.T) {
	stages := Stages()
	if len(stages) != 3 {
		t.Fatalf("len(Stages()) = %d, want 3", len(stages))
	}
	for i, s := range stages {
		if int(s) != i {
			t.Errorf("Stages()[%d] = %v, want stage %d", i, s, i)
		}
	}
}

func TestTitles(t *testing.T) {
	items := []*Item{{Title: "a"}, {Title: "b"}}
	got := Titles(items)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Titles() = %v, want [a b]", got)
	}
	if got := Titles(nil); len(got) != 0 {
		t.Errorf("Titles(nil) = %v, want empty", got)
	}
}

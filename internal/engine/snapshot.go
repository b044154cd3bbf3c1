package engine

import "github.com/vovakirdan/quiztris/internal/quiz"

// Snapshot is a flat, comparable view of a State.
// Uses primitive types only so two snapshots can be compared with ==.
type Snapshot struct {
	Phase    string
	Score    int
	Wrong    int
	Reason   string
	Turns    int
	Lines    int
	Position int

	// Board rows, '#' for occupied and '.' for empty
	Board string

	// Current turn, empty when no turn is active
	Block   string
	Prompt  string
	Answers [quiz.AnswerCount]string
	Correct string
}

// Snapshot returns the current state as a Snapshot.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    s.Phase().String(),
		Score:    s.Score,
		Wrong:    s.Wrong,
		Reason:   string(s.Reason),
		Turns:    s.Turns,
		Lines:    s.Lines,
		Position: s.Position,
		Board:    s.Board.String(),
	}
	if s.Block != nil {
		snap.Block = s.Block.Kind().String()
	}
	if s.Question != nil {
		snap.Prompt = s.Question.Prompt
		for i, a := range s.Question.Answers {
			snap.Answers[i] = a.String()
		}
		snap.Correct = s.Question.Correct.String()
	}
	return snap
}

// Package engine sequences a Quiztris session: it deals a question and a
// block each turn, checks answers, drops blocks, keeps score and decides
// when the game is over.
//
// The engine keeps no session state of its own. Every operation takes a
// State value and returns the next one; the host decides where states live
// between actions.
package engine

import (
	"github.com/vovakirdan/quiztris/internal/board"
	"github.com/vovakirdan/quiztris/internal/quiz"
)

// Game rules.
const (
	StartColumn   = 4   // Column a new block starts at
	PointsPerLine = 100 // Score awarded per cleared row
	MaxWrong      = 3   // Wrong answers allowed per session
)

// Reason explains why a session ended.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonStrikes  Reason = "strikes"  // MaxWrong wrong answers
	ReasonOverflow Reason = "overflow" // Stack reached the top row
)

// Phase is the high-level state of a session.
type Phase int

const (
	PhaseAwaitingTurn Phase = iota
	PhaseTurnActive
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingTurn:
		return "AwaitingTurn"
	case PhaseTurnActive:
		return "TurnActive"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is a complete session state.
// Question and Block are nil when no turn is active. Both point to values
// that are never mutated, so copying a State is safe.
type State struct {
	Board     board.Board
	Score     int
	Wrong     int
	GameOver  bool
	Reason    Reason
	TurnReady bool
	Question  *quiz.Question
	Block     *board.Shape
	Position  int

	// Session counters
	Turns int // Blocks placed
	Lines int // Rows cleared
}

// Initial returns the state every session starts from.
func Initial() State {
	return State{
		Board:    board.New(),
		Position: StartColumn,
	}
}

// Phase reports the state machine phase of s.
func (s State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.TurnReady:
		return PhaseTurnActive
	default:
		return PhaseAwaitingTurn
	}
}

// StrikesLeft returns how many more wrong answers end the session.
func (s State) StrikesLeft() int {
	return MaxWrong - s.Wrong
}

// Preview returns the overlay cells of the current block at its column,
// or nil when no block is active.
func (s State) Preview() []board.Cell {
	if s.Block == nil {
		return nil
	}
	return s.Board.Preview(*s.Block, s.Position)
}

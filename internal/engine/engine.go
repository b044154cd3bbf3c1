package engine

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/quiztris/internal/board"
	"github.com/vovakirdan/quiztris/internal/quiz"
)

// Precondition errors returned by SubmitAnswer. The state passed in is
// returned unchanged alongside them.
var (
	ErrNoActiveTurn = errors.New("engine: no active turn")
	ErrGameOver     = errors.New("engine: game is over")
	ErrAnswerIndex  = errors.New("engine: answer index out of range")
)

// Direction is a horizontal block move.
type Direction int

const (
	Left Direction = iota
	Right
)

// Outcome classifies the effect of an answer.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeGameOver
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "Correct"
	case OutcomeIncorrect:
		return "Incorrect"
	case OutcomeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Result describes what an answer did.
type Result struct {
	Outcome Outcome
	Correct bool   // Whether the chosen answer was right, also when the game ended
	Lines   int    // Rows cleared by the placement
	Points  int    // Score gained
	Reason  Reason // Set when Outcome is OutcomeGameOver
}

// Engine holds the rules and random source for a session.
// It is not safe for concurrent use; give each session its own Engine.
type Engine struct {
	rng *rand.Rand
	gen *quiz.Generator
}

// New creates an engine drawing questions and shapes from rng.
func New(opts quiz.Options, rng *rand.Rand) *Engine {
	return &Engine{
		rng: rng,
		gen: quiz.NewGenerator(rng, opts),
	}
}

// NewSeeded creates an engine with its own random source.
func NewSeeded(opts quiz.Options, seed int64) *Engine {
	return New(opts, rand.New(rand.NewSource(seed)))
}

// NewGame returns a fresh session state.
func (e *Engine) NewGame() State {
	return Initial()
}

// Reset discards s and returns a fresh session state. It always succeeds.
func (e *Engine) Reset(_ State) State {
	return Initial()
}

// EnsureTurn deals a new question and block when no turn is active.
// It is a no-op during an active turn and after game over.
func (e *Engine) EnsureTurn(s State) State {
	if s.GameOver || s.TurnReady {
		return s
	}
	q := e.gen.Generate()
	shape := board.RandomShape(e.rng)

	s.Question = &q
	s.Block = &shape
	s.Position = StartColumn
	s.TurnReady = true
	return s
}

// MoveBlock shifts the current block one column. Moves past either edge are
// ignored, as are moves without an active turn.
func (e *Engine) MoveBlock(s State, dir Direction) State {
	if s.GameOver || !s.TurnReady || s.Block == nil {
		return s
	}
	switch dir {
	case Left:
		if s.Position > 0 {
			s.Position--
		}
	case Right:
		if s.Position+s.Block.Width() < board.Cols {
			s.Position++
		}
	}
	return s
}

// SubmitAnswer checks the answer at index against the current question.
//
// A correct answer drops the block, adds PointsPerLine for every cleared row
// and ends the turn; if the stack then reaches the top row the session is
// over. A wrong answer adds a strike and keeps the same question and block;
// the MaxWrong-th strike ends the session.
func (e *Engine) SubmitAnswer(s State, index int) (State, Result, error) {
	if s.GameOver {
		return s, Result{}, ErrGameOver
	}
	if !s.TurnReady || s.Question == nil || s.Block == nil {
		return s, Result{}, ErrNoActiveTurn
	}
	if index < 0 || index >= quiz.AnswerCount {
		return s, Result{}, ErrAnswerIndex
	}

	if !s.Question.IsCorrect(index) {
		s.Wrong++
		if s.Wrong >= MaxWrong {
			s.Wrong = MaxWrong
			s.GameOver = true
			s.Reason = ReasonStrikes
			return s, Result{Outcome: OutcomeGameOver, Reason: ReasonStrikes}, nil
		}
		return s, Result{Outcome: OutcomeIncorrect}, nil
	}

	lines := s.Board.Place(*s.Block, s.Position)
	points := lines * PointsPerLine
	s.Score += points
	s.Lines += lines
	s.Turns++
	s.TurnReady = false
	s.Question = nil
	s.Block = nil
	s.Position = StartColumn

	res := Result{Outcome: OutcomeCorrect, Correct: true, Lines: lines, Points: points}
	if s.Board.TopRowOccupied() {
		s.GameOver = true
		s.Reason = ReasonOverflow
		res.Outcome = OutcomeGameOver
		res.Reason = ReasonOverflow
	}
	return s, res, nil
}

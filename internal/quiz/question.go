// Package quiz generates the volume unit-conversion questions (L, dL, mL)
// that gate each block drop.
package quiz

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
)

// AnswerCount is the number of candidate answers per question.
const AnswerCount = 4

// Answer is a numeric candidate answer. Whole marks values that were
// truncated to an integer for display.
type Answer struct {
	Value float64
	Whole bool
}

// String formats the answer the way it is shown on its button.
func (a Answer) String() string {
	if a.Whole {
		return strconv.FormatInt(int64(a.Value), 10)
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

// Equal compares answers by numeric value only, so 2 and 2.0 match.
func (a Answer) Equal(b Answer) bool {
	return a.Value == b.Value
}

// Question is a single quiz question. The order of Answers is the display
// order; an index into it identifies the chosen button.
type Question struct {
	Template Template
	Value    int
	Prompt   string
	Answers  [AnswerCount]Answer
	Correct  Answer
}

// IsCorrect reports whether the answer at index matches the correct answer.
// Out-of-range indices are never correct.
func (q Question) IsCorrect(index int) bool {
	if index < 0 || index >= AnswerCount {
		return false
	}
	return q.Answers[index].Equal(q.Correct)
}

// CorrectCount returns how many of the candidate answers equal the correct
// answer. Usually 1; more when distractors collide.
func (q Question) CorrectCount() int {
	n := 0
	for i := range q.Answers {
		if q.IsCorrect(i) {
			n++
		}
	}
	return n
}

// Distinct reports whether all candidate answers have different values.
func (q Question) Distinct() bool {
	for i := 0; i < AnswerCount; i++ {
		for j := i + 1; j < AnswerCount; j++ {
			if q.Answers[i].Equal(q.Answers[j]) {
				return false
			}
		}
	}
	return true
}

// Options configures question generation.
type Options struct {
	// Dedupe makes the generator re-roll colliding distractors so every
	// question shows four different values. Off by default.
	Dedupe bool
}

// Generator produces questions from a random source.
type Generator struct {
	rng  *rand.Rand
	opts Options
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, opts Options) *Generator {
	return &Generator{rng: rng, opts: opts}
}

// Generate picks a template uniformly and builds a question from it.
func (g *Generator) Generate() Question {
	t := Templates[g.rng.Intn(len(Templates))]
	return g.GenerateFrom(t, t.Draw(g.rng))
}

// GenerateFrom builds a question for a fixed template and value.
// Distractors and answer order still come from the generator's random source.
func (g *Generator) GenerateFrom(t Template, value int) Question {
	correct := t.Convert(value)

	var wrong [AnswerCount - 1]float64
	if correct >= 1 {
		wrong = [AnswerCount - 1]float64{
			correct * 10,
			correct / 10,
			correct + float64(g.rng.Intn(3)+1),
		}
	} else {
		wrong = [AnswerCount - 1]float64{
			correct * 10,
			correct + 0.1,
			correct + 0.01,
		}
	}

	q := Question{
		Template: t,
		Value:    value,
		Prompt:   t.Prompt(value),
		Correct:  format(correct, correct >= 1),
	}
	q.Answers[0] = q.Correct
	for i, w := range wrong {
		q.Answers[i+1] = format(w, correct >= 1 && w >= 1)
	}

	if g.opts.Dedupe {
		g.dedupe(&q)
	}

	g.rng.Shuffle(AnswerCount, func(i, j int) {
		q.Answers[i], q.Answers[j] = q.Answers[j], q.Answers[i]
	})
	return q
}

// format truncates v to an integer when whole is set.
func format(v float64, whole bool) Answer {
	if whole {
		return Answer{Value: math.Trunc(v), Whole: true}
	}
	return Answer{Value: v}
}

// dedupe replaces distractors in slots 1..3 that collide with an earlier
// slot. The correct answer in slot 0 is never touched.
func (g *Generator) dedupe(q *Question) {
	for i := 1; i < AnswerCount; i++ {
		for taken(q.Answers[:i], q.Answers[i]) {
			q.Answers[i] = g.nudge(q.Correct, q.Answers[i])
		}
	}
}

// nudge moves a colliding distractor away from the correct answer in steps
// matching the answer's display format.
func (g *Generator) nudge(correct, a Answer) Answer {
	if a.Whole {
		return Answer{Value: math.Trunc(a.Value) + float64(g.rng.Intn(3)+1), Whole: true}
	}
	step := 0.1
	if !correct.Whole && correct.Value < 0.1 {
		step = 0.01
	}
	return Answer{Value: roundTo(a.Value+step, 4)}
}

func taken(seen []Answer, a Answer) bool {
	for _, s := range seen {
		if s.Equal(a) {
			return true
		}
	}
	return false
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// String renders the question with its numbered answers.
func (q Question) String() string {
	s := q.Prompt
	for i, a := range q.Answers {
		s += fmt.Sprintf("\n  %d) %s", i+1, a)
	}
	return s
}

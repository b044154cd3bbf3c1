package quiz

import (
	"math"
	"math/rand"
	"testing"
)

func newTestGenerator(seed int64, dedupe bool) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), Options{Dedupe: dedupe})
}

func mustTemplate(t *testing.T, id string) Template {
	t.Helper()
	tmpl, ok := TemplateByID(id)
	if !ok {
		t.Fatalf("template %q not found", id)
	}
	return tmpl
}

func TestLitersToMilliliters(t *testing.T) {
	g := newTestGenerator(1, false)
	q := g.GenerateFrom(mustTemplate(t, "L_to_mL"), 3)

	if q.Prompt != "3L는 몇 mL일까요?" {
		t.Errorf("Prompt = %q", q.Prompt)
	}
	if q.Correct.Value != 3000 || !q.Correct.Whole {
		t.Errorf("Correct = %+v, want whole 3000", q.Correct)
	}
	if q.Correct.String() != "3000" {
		t.Errorf("Correct.String() = %q, want %q", q.Correct.String(), "3000")
	}
}

func TestMillilitersToLitersTruncates(t *testing.T) {
	g := newTestGenerator(2, false)
	q := g.GenerateFrom(mustTemplate(t, "mL_to_L"), 2000)

	if q.Correct.Value != 2 || !q.Correct.Whole {
		t.Errorf("Correct = %+v, want whole 2", q.Correct)
	}
	if q.Correct.String() != "2" {
		t.Errorf("Correct.String() = %q, want %q", q.Correct.String(), "2")
	}
	if q.Prompt != "2000mL는 몇 L일까요?" {
		t.Errorf("Prompt = %q", q.Prompt)
	}
}

func TestDistractorFormats(t *testing.T) {
	tests := []struct {
		template string
		value    int
		want     map[string]bool // displayed values that must be present
	}{
		// 7dL = 700mL: 7000, 70, 701..703
		{"dL_to_mL", 7, map[string]bool{"700": true, "7000": true, "70": true}},
		// 700mL = 7dL: 70, 0.7 (kept fractional), 8..10
		{"mL_to_dL", 700, map[string]bool{"7": true, "70": true, "0.7": true}},
		// 1L = 1000mL: 10000, 100
		{"L_to_mL", 1, map[string]bool{"1000": true, "10000": true, "100": true}},
		// 5000mL = 5L: 50, 0.5
		{"mL_to_L", 5000, map[string]bool{"5": true, "50": true, "0.5": true}},
	}

	for _, tc := range tests {
		t.Run(tc.template, func(t *testing.T) {
			g := newTestGenerator(3, false)
			q := g.GenerateFrom(mustTemplate(t, tc.template), tc.value)

			shown := make(map[string]bool)
			for _, a := range q.Answers {
				shown[a.String()] = true
			}
			for s := range tc.want {
				if !shown[s] {
					t.Errorf("answer %q missing from %v", s, q.Answers)
				}
			}
		})
	}
}

func TestAdditiveDistractorRange(t *testing.T) {
	tmpl := mustTemplate(t, "dL_to_mL")
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGenerator(seed, false)
		q := g.GenerateFrom(tmpl, 4)

		found := false
		for _, a := range q.Answers {
			if a.Value >= 401 && a.Value <= 403 {
				found = true
			}
		}
		if !found {
			t.Fatalf("seed %d: no answer in 401..403: %v", seed, q.Answers)
		}
	}
}

func TestGeneratedQuestionsContainCorrectAnswer(t *testing.T) {
	g := newTestGenerator(42, false)
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		q := g.Generate()
		seen[q.Template.ID] = true

		if len(q.Answers) != AnswerCount {
			t.Fatalf("question %d: %d answers", i, len(q.Answers))
		}
		if q.CorrectCount() < 1 {
			t.Fatalf("question %d: correct answer %v not among %v", i, q.Correct, q.Answers)
		}
		if q.Value < mustTemplate(t, q.Template.ID).Step {
			t.Fatalf("question %d: value %d below template step", i, q.Value)
		}
	}

	if len(seen) != len(Templates) {
		t.Errorf("expected all %d templates, saw %d", len(Templates), len(seen))
	}
}

func TestShuffleUsesAllPositions(t *testing.T) {
	g := newTestGenerator(5, false)
	tmpl := mustTemplate(t, "L_to_mL")
	positions := make(map[int]bool)

	for i := 0; i < 200; i++ {
		q := g.GenerateFrom(tmpl, 2)
		for idx := range q.Answers {
			if q.IsCorrect(idx) {
				positions[idx] = true
			}
		}
	}
	if len(positions) != AnswerCount {
		t.Errorf("correct answer appeared in %d positions, want %d", len(positions), AnswerCount)
	}
}

func TestIsCorrectOutOfRange(t *testing.T) {
	g := newTestGenerator(6, false)
	q := g.Generate()
	if q.IsCorrect(-1) || q.IsCorrect(AnswerCount) {
		t.Error("out-of-range index must never be correct")
	}
}

func TestSameSeedSameQuestions(t *testing.T) {
	g1 := newTestGenerator(1234, false)
	g2 := newTestGenerator(1234, false)
	for i := 0; i < 20; i++ {
		q1, q2 := g1.Generate(), g2.Generate()
		if q1.Prompt != q2.Prompt || q1.Answers != q2.Answers {
			t.Fatalf("question %d differs: %v vs %v", i, q1, q2)
		}
	}
}

func TestDedupeProducesDistinctAnswers(t *testing.T) {
	g := newTestGenerator(8, true)
	for i := 0; i < 500; i++ {
		q := g.Generate()
		if !q.Distinct() {
			t.Fatalf("question %d has duplicate answers: %v", i, q.Answers)
		}
		if q.CorrectCount() != 1 {
			t.Fatalf("question %d: correct count %d", i, q.CorrectCount())
		}
	}
}

func TestDedupeResolvesCollision(t *testing.T) {
	g := newTestGenerator(9, true)
	q := Question{Correct: Answer{Value: 2, Whole: true}}
	q.Answers = [AnswerCount]Answer{
		{Value: 2, Whole: true},
		{Value: 20, Whole: true},
		{Value: 2, Whole: true},
		{Value: 20, Whole: true},
	}

	g.dedupe(&q)
	if !q.Distinct() {
		t.Errorf("dedupe left duplicates: %v", q.Answers)
	}
	if !q.Answers[0].Equal(q.Correct) {
		t.Error("dedupe must not touch the correct answer")
	}
}

func TestDedupeKeepsDistractorFormat(t *testing.T) {
	g := newTestGenerator(3, true)
	q := Question{Correct: Answer{Value: 1, Whole: true}}
	q.Answers = [AnswerCount]Answer{
		{Value: 1, Whole: true},
		{Value: 1.3},
		{Value: 1.3},
		{Value: 10, Whole: true},
	}

	g.dedupe(&q)
	if !q.Distinct() {
		t.Fatalf("dedupe left duplicates: %v", q.Answers)
	}
	if got := q.Answers[2]; got.Whole || got.String() != "1.4" {
		t.Errorf("nudged fractional distractor = %+v (%s), want 1.4", got, got)
	}
	for i, a := range q.Answers {
		if a.Whole && a.Value != math.Trunc(a.Value) {
			t.Errorf("answer %d = %v shows as %s", i, a.Value, a)
		}
	}
}

func TestAnswerString(t *testing.T) {
	tests := []struct {
		a    Answer
		want string
	}{
		{Answer{Value: 3000, Whole: true}, "3000"},
		{Answer{Value: 0.5}, "0.5"},
		{Answer{Value: 0.01}, "0.01"},
		{Answer{Value: 7, Whole: true}, "7"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFractionalBranch(t *testing.T) {
	// No built-in template yields a value below 1, so use a custom one.
	tmpl := Template{ID: "mL_to_L_small", From: Milliliter, To: Liter, Min: 1, Max: 1, Step: 500, Mul: 1, Div: 1000}
	g := newTestGenerator(10, false)
	q := g.GenerateFrom(tmpl, 500)

	if q.Correct.Whole || q.Correct.Value != 0.5 {
		t.Fatalf("Correct = %+v, want fractional 0.5", q.Correct)
	}
	shown := make(map[string]bool)
	for _, a := range q.Answers {
		if a.Whole {
			t.Errorf("answer %v should not be truncated", a)
		}
		shown[a.String()] = true
	}
	for _, want := range []string{"0.5", "5", "0.6", "0.51"} {
		if !shown[want] {
			t.Errorf("answer %q missing from %v", want, q.Answers)
		}
	}
}

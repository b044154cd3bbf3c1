package quiz

import (
	"fmt"
	"math/rand"
)

// Unit is a volume unit.
type Unit string

const (
	Liter      Unit = "L"
	Deciliter  Unit = "dL"
	Milliliter Unit = "mL"
)

// Template describes one kind of conversion question.
// The source value is Step * k for k drawn uniformly from [Min, Max].
// Convert multiplies by Mul and divides by Div so values stay exact.
type Template struct {
	ID   string
	From Unit
	To   Unit
	Min  int
	Max  int
	Step int
	Mul  int
	Div  int
}

// Templates are the four conversions the game asks about.
var Templates = []Template{
	{ID: "L_to_mL", From: Liter, To: Milliliter, Min: 1, Max: 5, Step: 1, Mul: 1000, Div: 1},
	{ID: "mL_to_L", From: Milliliter, To: Liter, Min: 1, Max: 5, Step: 1000, Mul: 1, Div: 1000},
	{ID: "dL_to_mL", From: Deciliter, To: Milliliter, Min: 1, Max: 9, Step: 1, Mul: 100, Div: 1},
	{ID: "mL_to_dL", From: Milliliter, To: Deciliter, Min: 1, Max: 9, Step: 100, Mul: 1, Div: 100},
}

// TemplateByID looks up a template by its ID.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Draw picks a random source value for the template.
func (t Template) Draw(rng *rand.Rand) int {
	return (t.Min + rng.Intn(t.Max-t.Min+1)) * t.Step
}

// Multiplier returns the conversion factor as a float, e.g. 0.001 for mL to L.
func (t Template) Multiplier() float64 {
	return float64(t.Mul) / float64(t.Div)
}

// Convert applies the conversion to a source value.
func (t Template) Convert(value int) float64 {
	return float64(value*t.Mul) / float64(t.Div)
}

// Prompt renders the question text for a source value.
func (t Template) Prompt(value int) string {
	return fmt.Sprintf("%d%s는 몇 %s일까요?", value, t.From, t.To)
}

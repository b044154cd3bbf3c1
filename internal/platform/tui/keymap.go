package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiztris/internal/quiz"
)

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Answers [quiz.AnswerCount]key.Binding
	Left    key.Binding
	Right   key.Binding
	Reset   key.Binding
	Shot    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Answers[0], k.Left, k.Right, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Answers[:],
		{k.Left, k.Right},
		{k.Reset, k.Shot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Answers: [quiz.AnswerCount]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "answer")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "answer 2")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "answer 3")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "answer 4")),
		},
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right/l", "move right"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Shot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save board"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// answerIndex returns the answer slot bound to msg, if any.
func (k GameKeyMap) answerIndex(msg tea.KeyMsg) (int, bool) {
	for i, b := range k.Answers {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return 0, false
}

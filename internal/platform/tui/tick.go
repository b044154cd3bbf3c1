// Package tui provides the Bubble Tea front end for Quiztris.
// It renders engine states, maps keys to engine operations and paces the
// feedback shown after each answer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FeedbackDoneMsg is sent when an answer's feedback message has been shown
// long enough. Seq ties it to the answer that started it, so a message that
// arrives after a reset is ignored.
type FeedbackDoneMsg struct {
	Seq int
}

// feedbackCmd returns a Bubble Tea command that sends FeedbackDoneMsg after d.
func feedbackCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FeedbackDoneMsg{Seq: seq}
	})
}

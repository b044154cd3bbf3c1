package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quiztris/internal/config"
	"github.com/vovakirdan/quiztris/internal/engine"
	"github.com/vovakirdan/quiztris/internal/session"
	"github.com/vovakirdan/quiztris/internal/storage"
)

// DefaultPlayer is the player name used for local games.
const DefaultPlayer = "local"

// ResultSaver persists finished games.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Options configures a game model.
type Options struct {
	// Player names the results and, with Sessions, the stored game.
	Player string

	// Results receives finished games. Nil disables saving.
	Results ResultSaver

	// Sessions keeps the state between connections so a returning player
	// resumes an unfinished game. Nil disables resume.
	Sessions *session.Store

	// Renderer styles the output. Defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes the board. Empty disables it.
	ScreenshotDir string
}

type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackCorrect
	feedbackWrong
)

// Model is the Bubble Tea model for one Quiztris session.
type Model struct {
	engine      *engine.Engine
	state       engine.State
	cfg         config.Config
	opts        Options
	keys        GameKeyMap
	help        help.Model
	styles      styles
	feedback    feedbackKind
	feedbackSeq int
	last        engine.Result
	saved       bool  // Whether the result has been saved for current game over
	saveErr     error // Last save failure, shown on the game over screen
	resumed     bool
	width       int
	height      int
	quitting    bool
}

// NewModel creates a new Bubble Tea model driving eng.
// The first turn is dealt immediately.
func NewModel(eng *engine.Engine, cfg config.Config, opts Options) Model {
	if opts.Player == "" {
		opts.Player = DefaultPlayer
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}

	state := eng.NewGame()
	resumed := false
	if opts.Sessions != nil {
		if st, ok := opts.Sessions.Get(session.ID(opts.Player)); ok && !st.GameOver {
			state = st
			resumed = true
		}
	}

	m := Model{
		engine:  eng,
		state:   eng.EnsureTurn(state),
		cfg:     cfg,
		opts:    opts,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		styles:  newStyles(opts.Renderer, cfg.Display),
		resumed: resumed,
	}
	m.persist()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Quiztris")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FeedbackDoneMsg:
		return m.handleFeedbackDone(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	}

	// Input is ignored while feedback is on screen.
	if m.feedback != feedbackNone {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Reset):
		return m.reset(), nil
	case key.Matches(msg, m.keys.Left):
		m.state = m.engine.MoveBlock(m.state, engine.Left)
		m.persist()
	case key.Matches(msg, m.keys.Right):
		m.state = m.engine.MoveBlock(m.state, engine.Right)
		m.persist()
	default:
		if idx, ok := m.keys.answerIndex(msg); ok {
			return m.answer(idx)
		}
	}

	return m, nil
}

// answer submits the answer at idx and starts its feedback.
func (m Model) answer(idx int) (tea.Model, tea.Cmd) {
	next, res, err := m.engine.SubmitAnswer(m.state, idx)
	if err != nil {
		// No active turn or game over; the key does nothing.
		return m, nil
	}
	m.state = next
	m.last = res

	if res.Outcome == engine.OutcomeGameOver {
		m.saveResult()
		m.persist()
		return m, nil
	}

	kind, delay := feedbackWrong, m.cfg.Feedback.WrongDelay()
	if res.Correct {
		kind, delay = feedbackCorrect, m.cfg.Feedback.CorrectDelay()
	}
	if delay <= 0 {
		m.state = m.engine.EnsureTurn(m.state)
		m.persist()
		return m, nil
	}

	m.persist()
	m.feedback = kind
	m.feedbackSeq++
	return m, feedbackCmd(delay, m.feedbackSeq)
}

// handleFeedbackDone clears the feedback and deals the next turn if needed.
func (m Model) handleFeedbackDone(msg FeedbackDoneMsg) (tea.Model, tea.Cmd) {
	if m.feedback == feedbackNone || msg.Seq != m.feedbackSeq {
		return m, nil
	}
	m.feedback = feedbackNone
	m.state = m.engine.EnsureTurn(m.state)
	m.persist()
	return m, nil
}

// reset starts a new game.
func (m Model) reset() Model {
	m.state = m.engine.EnsureTurn(m.engine.Reset(m.state))
	m.feedback = feedbackNone
	m.feedbackSeq++
	m.last = engine.Result{}
	m.saved = false
	m.saveErr = nil
	m.resumed = false
	m.persist()
	return m
}

// saveResult records the finished game once.
func (m *Model) saveResult() {
	if m.saved || !m.state.GameOver {
		return
	}
	m.saved = true
	if m.opts.Results == nil {
		return
	}
	_, m.saveErr = m.opts.Results.SaveResult(storage.Result{
		Player: m.opts.Player,
		Score:  m.state.Score,
		Lines:  m.state.Lines,
		Turns:  m.state.Turns,
		Wrong:  m.state.Wrong,
		Reason: string(m.state.Reason),
	})
}

// persist writes the state to the session store. Finished games are removed
// so the next connection starts fresh.
func (m Model) persist() {
	if m.opts.Sessions == nil {
		return
	}
	id := session.ID(m.opts.Player)
	if m.state.GameOver {
		m.opts.Sessions.Delete(id)
		return
	}
	m.opts.Sessions.Put(id, m.state)
}

// saveScreenshot writes the current board as text.
func (m Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.opts.ScreenshotDir, 0o755)

	snap := m.state.Snapshot()
	var sb strings.Builder
	fmt.Fprintf(&sb, "score %d  wrong %d/%d  lines %d\n", snap.Score, snap.Wrong, engine.MaxWrong, snap.Lines)
	if snap.Prompt != "" {
		fmt.Fprintf(&sb, "%s %s\n", snap.Prompt, strings.Join(snap.Answers[:], " | "))
	}
	sb.WriteString(snap.Board)
	sb.WriteString("\n")

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("quiztris_%s.txt", timestamp))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(sb.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.styles
	header := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(titleText),
		st.subtle.Render(subtitleText),
	)

	var side []string
	side = append(side, renderStatus(m.state, st))
	if m.state.GameOver {
		side = append(side, renderGameOver(m.state, st, m.saveErr))
	} else {
		if m.resumed {
			side = append(side, st.subtle.Render(resumedText))
		}
		side = append(side, renderQuestion(m.state, st))
		if fb := renderFeedback(m.feedback, m.last, m.state, st); fb != "" {
			side = append(side, fb)
		}
	}
	if m.help.ShowAll {
		side = append(side, renderTips(st))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBoard(m.state, m.cfg.Display, st),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, side...),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		st.subtle.Render(m.help.View(m.keys)),
	)
}

// State returns the current engine state.
func (m Model) State() engine.State {
	return m.state
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(eng *engine.Engine, cfg config.Config, opts Options) error {
	model := NewModel(eng, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

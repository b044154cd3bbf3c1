package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quiztris/internal/board"
	"github.com/vovakirdan/quiztris/internal/config"
	"github.com/vovakirdan/quiztris/internal/engine"
)

// Messages shown to the player.
const (
	titleText      = "🎮 들이변환 테트리스"
	subtitleText   = "들이변환 문제를 풀고 블록을 쌓아보세요!"
	correctText    = "🎉 정답입니다!"
	wrongFormat    = "❌ 틀렸어요! (%d/%d)"
	strikesText    = "😢 %d번 틀렸습니다! 다시 시작해주세요."
	overflowText   = "😢 게임 오버! 블록이 꽉 찼어요!"
	restartText    = "r: 다시 시작하기"
	resumedText    = "이어서 플레이합니다."
	positionFormat = "현재 위치: %d"
)

// tipsText is the how-to-play panel shown with the full help view.
var tipsText = []string{
	"📖 게임 방법",
	"1. 들이변환 문제를 풀어보세요! (L, dL, mL 변환)",
	"2. 정답을 맞추면 블록이 떨어져요!",
	"3. 왼쪽/오른쪽 키로 블록 위치를 조절하세요.",
	fmt.Sprintf("4. 한 줄이 꽉 차면 점수 %d점을 얻어요!", engine.PointsPerLine),
	fmt.Sprintf("5. %d번 틀리면 게임이 끝나요. 조심하세요!", engine.MaxWrong),
	"",
	"들이 단위 팁:",
	"- 1L = 10dL = 1000mL",
	"- 1dL = 100mL",
}

// styles holds the Lip Gloss styles for one renderer.
type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	label    lipgloss.Style
	prompt   lipgloss.Style
	answer   lipgloss.Style
	correct  lipgloss.Style
	wrong    lipgloss.Style
	frame    lipgloss.Style
	panel    lipgloss.Style
	stack    lipgloss.Style
	empty    lipgloss.Style
	previews map[board.Kind]lipgloss.Style
}

// newStyles builds styles on r using the display colors from d.
func newStyles(r *lipgloss.Renderer, d config.DisplayConfig) styles {
	s := styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		subtle:  r.NewStyle().Foreground(lipgloss.Color("241")),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		prompt:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		answer:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		correct: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		wrong:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Background(lipgloss.Color("234")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		stack:    r.NewStyle().Foreground(lipgloss.Color(d.StackColor)),
		empty:    r.NewStyle().Foreground(lipgloss.Color("238")),
		previews: make(map[board.Kind]lipgloss.Style),
	}
	for _, shape := range board.AllShapes() {
		k := shape.Kind()
		s.previews[k] = r.NewStyle().Foreground(lipgloss.Color(d.ShapeColor(k.String())))
	}
	return s
}

// renderBoard draws the board with the current block's preview overlay.
func renderBoard(s engine.State, d config.DisplayConfig, st styles) string {
	overlay := make(map[board.Cell]bool)
	for _, c := range s.Preview() {
		overlay[c] = true
	}
	preview := st.stack
	if s.Block != nil {
		preview = st.previews[s.Block.Kind()]
	}

	var sb strings.Builder
	for r := range board.Rows {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := range board.Cols {
			if c > 0 {
				sb.WriteRune(' ')
			}
			switch {
			case s.Board.Occupied(r, c):
				sb.WriteString(st.stack.Render(d.Filled))
			case overlay[board.Cell{Row: r, Col: c}]:
				sb.WriteString(preview.Render(d.Preview))
			default:
				sb.WriteString(st.empty.Render(d.Empty))
			}
		}
	}
	return st.frame.Render(sb.String())
}

// renderStatus draws the score, strike count and block column.
func renderStatus(s engine.State, st styles) string {
	lines := []string{
		st.label.Render("점수") + "      " + fmt.Sprint(s.Score),
		st.label.Render("틀린 횟수") + " " + fmt.Sprintf("%d/%d", s.Wrong, engine.MaxWrong),
		st.label.Render("줄") + "        " + fmt.Sprint(s.Lines),
	}
	if s.Block != nil {
		lines = append(lines, st.subtle.Render(fmt.Sprintf(positionFormat, s.Position+1)))
	}
	return st.panel.Render(strings.Join(lines, "\n"))
}

// renderQuestion draws the prompt and the four numbered answers.
func renderQuestion(s engine.State, st styles) string {
	if s.Question == nil {
		return ""
	}
	buttons := make([]string, len(s.Question.Answers))
	for i, a := range s.Question.Answers {
		buttons[i] = st.answer.Render(fmt.Sprintf("%d) %s", i+1, a))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		st.prompt.Render("📝 "+s.Question.Prompt),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
}

// renderFeedback draws the message for the answer just given.
func renderFeedback(kind feedbackKind, last engine.Result, s engine.State, st styles) string {
	switch kind {
	case feedbackCorrect:
		text := correctText
		if last.Points > 0 {
			text += fmt.Sprintf(" +%d", last.Points)
		}
		return st.correct.Render(text)
	case feedbackWrong:
		return st.wrong.Render(fmt.Sprintf(wrongFormat, s.Wrong, engine.MaxWrong))
	default:
		return ""
	}
}

// renderGameOver draws the terminal screen for s.
func renderGameOver(s engine.State, st styles, saveErr error) string {
	headline := overflowText
	if s.Reason == engine.ReasonStrikes {
		headline = fmt.Sprintf(strikesText, engine.MaxWrong)
	}
	lines := []string{
		st.wrong.Render(headline),
		"",
		fmt.Sprintf("최종 점수: %d", s.Score),
		fmt.Sprintf("지운 줄: %d   놓은 블록: %d", s.Lines, s.Turns),
	}
	if saveErr != nil {
		lines = append(lines, st.subtle.Render("기록을 저장하지 못했어요: "+saveErr.Error()))
	}
	lines = append(lines, "", st.subtle.Render(restartText))
	return st.panel.Render(strings.Join(lines, "\n"))
}

// renderTips draws the how-to-play panel.
func renderTips(st styles) string {
	return st.panel.Render(st.subtle.Render(strings.Join(tipsText, "\n")))
}

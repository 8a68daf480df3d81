package timer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	fastingdto "jejum/internal/modules/fasting/dto"
	apperrors "jejum/internal/platform/errors"
	"jejum/internal/ui/components"
	"jejum/internal/ui/theme"
)

type FastingPort interface {
	Status(ctx context.Context) (fastingdto.StatusOutput, error)
	Start(ctx context.Context, hours float64, modeID, intention string) (fastingdto.StartOutput, error)
	AddWater(ctx context.Context) (fastingdto.WaterOutput, error)
	Finish(ctx context.Context, mood, lastMeal string) (fastingdto.FinishOutput, error)
	WaterReminderDue(ctx context.Context) (bool, error)
	MarkWaterReminded(ctx context.Context) error
}

type TickMsg time.Time

type StatusMsg struct {
	Status fastingdto.StatusOutput
	Active bool
	Err    error
}

type StartedMsg struct {
	Out fastingdto.StartOutput
	Err error
}

type FinishedMsg struct {
	Out fastingdto.FinishOutput
	Err error
}

type WaterMsg struct {
	Count int
	Err   error
}

type ReminderMsg struct {
	Due bool
}

// Model renders the active fast: clock, progress bar, metabolic stage, water
// counter and the quote of the day. A 1-second tick drives the clock only
// while this tab is showing an active fast.
type Model struct {
	port      FastingPort
	progress  progress.Model
	status    fastingdto.StatusOutput
	active    bool
	spiritual bool
	reminder  bool
	finish    fastingdto.FinishOutput
	finished  bool
	errText   string
	width     int
	height    int
}

func New(port FastingPort, spiritual bool) Model {
	bar := progress.New(progress.WithDefaultGradient())
	return Model{port: port, progress: bar, spiritual: spiritual}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.RefreshCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) RefreshCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Status(context.Background())
		if err != nil {
			if errors.Is(err, apperrors.ErrNoActiveSession) {
				return StatusMsg{Active: false}
			}
			return StatusMsg{Err: err}
		}
		return StatusMsg{Status: out, Active: true}
	}
}

func (m Model) StartCmd(hours float64, modeID, intention string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), hours, modeID, intention)
		return StartedMsg{Out: out, Err: err}
	}
}

func (m Model) FinishCmd(mood, lastMeal string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Finish(context.Background(), mood, lastMeal)
		return FinishedMsg{Out: out, Err: err}
	}
}

func (m Model) AddWaterCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.AddWater(context.Background())
		if err != nil {
			return WaterMsg{Err: err}
		}
		_ = m.port.MarkWaterReminded(context.Background())
		return WaterMsg{Count: out.WaterCount}
	}
}

func (m Model) checkReminderCmd() tea.Cmd {
	return func() tea.Msg {
		due, err := m.port.WaterReminderDue(context.Background())
		if err != nil {
			return ReminderMsg{}
		}
		return ReminderMsg{Due: due}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.width - 8
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.progress.Width = w
		}

	case TickMsg:
		if !m.active {
			return m, tickCmd()
		}
		return m, tea.Batch(m.RefreshCmd(), m.checkReminderCmd(), tickCmd())

	case StatusMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.active = msg.Active
		m.status = msg.Status
		if msg.Active {
			m.finished = false
		}

	case StartedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.finished = false
		return m, m.RefreshCmd()

	case FinishedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.active = false
		m.finished = true
		m.finish = msg.Out
		m.reminder = false

	case WaterMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.status.WaterCount = msg.Count
		m.reminder = false

	case ReminderMsg:
		m.reminder = msg.Due
	}
	return m, nil
}

// SetSpiritual toggles spiritual quotes in the daily pool.
func (m *Model) SetSpiritual(enabled bool) {
	m.spiritual = enabled
}

func (m Model) Active() bool {
	return m.active
}

func (m Model) View() string {
	var sb strings.Builder

	switch {
	case m.finished:
		sb.WriteString(theme.Title.Render("Jejum concluído") + "\n\n")
		sb.WriteString(fmt.Sprintf("Duração: %.1fh\n", m.finish.ActualHours))
		if m.finish.Completed {
			sb.WriteString(theme.Clock.Render("Meta atingida") + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("Meta não atingida") + "\n")
		}
		sb.WriteString(fmt.Sprintf("+%d XP  (total %d, nível %d)\n", m.finish.XPEarned, m.finish.TotalXP, m.finish.Level))
		if m.finish.LeveledUp {
			sb.WriteString(theme.Hot.Render("Subiu de nível!") + "\n")
		}
		sb.WriteString(fmt.Sprintf("Sequência: %d dias\n", m.finish.Streak))
		for _, a := range m.finish.Unlocked {
			sb.WriteString(theme.Hot.Render("Conquista: "+a.Title) + "\n")
		}
		sb.WriteString("\n" + theme.Muted.Render("s: iniciar novo jejum"))

	case !m.active:
		sb.WriteString(theme.Title.Render("Nenhum jejum ativo") + "\n\n")
		sb.WriteString(theme.Muted.Render("s: iniciar jejum de 16h  (use 'jejum fast start' para outros modos)") + "\n\n")
		sb.WriteString(theme.Stage.Render(components.QuoteOfDay(time.Now(), m.spiritual)))

	default:
		s := m.status
		clockStyle := theme.Clock
		if s.RemainingSeconds < 0 {
			clockStyle = theme.Overrun
		}
		sb.WriteString(theme.Title.Render(s.Mode+" · meta "+fmt.Sprintf("%.0fh", s.TargetHours)) + "\n\n")
		sb.WriteString(clockStyle.Render(s.ElapsedClock) + theme.Muted.Render("  restante "+s.RemainingClock) + "\n\n")
		sb.WriteString(m.progress.ViewAs(s.Percentage/100) + "\n\n")
		sb.WriteString(theme.Stage.Render(s.StageTitle) + "\n")
		sb.WriteString(theme.Muted.Render(s.StageDesc) + "\n\n")
		sb.WriteString(fmt.Sprintf("Água: %d copos  (meta %.1fL)\n", s.WaterCount, s.WaterGoalLiters))
		if s.Intention != "" {
			sb.WriteString(theme.Muted.Render("Intenção: "+s.Intention) + "\n")
		}
		if m.reminder {
			sb.WriteString("\n" + theme.Hot.Render("Hora de beber água!  (w)") + "\n")
		}
		sb.WriteString("\n" + theme.Stage.Render(components.QuoteOfDay(time.Now(), m.spiritual)) + "\n")
		sb.WriteString("\n" + theme.Muted.Render("w: água  f: encerrar"))
	}

	if m.errText != "" {
		sb.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Red).Render(m.errText))
	}

	return theme.Pane.Width(maxInt(m.width-4, 20)).Render(sb.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	progressiondto "jejum/internal/modules/progression/dto"
	"jejum/internal/ui/theme"
)

type ProgressionPort interface {
	Progress(ctx context.Context) (progressiondto.ProgressOutput, error)
}

type LoadedMsg struct {
	Progress progressiondto.ProgressOutput
	Err      error
}

type Model struct {
	port     ProgressionPort
	progress progressiondto.ProgressOutput
	errText  string
	width    int
	height   int
}

func New(port ProgressionPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.ReloadCmd()
}

func (m Model) ReloadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Progress(context.Background())
		return LoadedMsg{Progress: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.progress = msg.Progress
	}
	return m, nil
}

func (m Model) View() string {
	if m.errText != "" {
		return theme.Pane.Render(theme.Muted.Render("conquistas: " + m.errText))
	}
	p := m.progress
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Conquistas  %d/%d", p.Unlocked, p.Total)) + "\n\n")
	for _, a := range p.Achievements {
		if a.Unlocked {
			sb.WriteString(theme.Hot.Render(a.Icon+" "+a.Title))
			if !a.DateUnlocked.IsZero() {
				sb.WriteString(theme.Muted.Render("  " + a.DateUnlocked.Format("02/01/2006")))
			}
		} else {
			sb.WriteString(theme.Muted.Render("🔒 " + a.Title))
		}
		sb.WriteString("\n" + theme.Muted.Render("   "+a.Description) + "\n\n")
	}
	return theme.Pane.Width(maxInt(m.width-4, 20)).Render(sb.String())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

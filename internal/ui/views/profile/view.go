package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	profiledto "jejum/internal/modules/profile/dto"
	"jejum/internal/ui/theme"
)

type ProfilePort interface {
	Show(ctx context.Context) (profiledto.ProfileOutput, error)
}

type LoadedMsg struct {
	Profile profiledto.ProfileOutput
	Err     error
}

type Model struct {
	port    ProfilePort
	xpBar   progress.Model
	goalBar progress.Model
	profile profiledto.ProfileOutput
	errText string
	width   int
	height  int
}

func New(port ProfilePort) Model {
	return Model{
		port:    port,
		xpBar:   progress.New(progress.WithDefaultGradient()),
		goalBar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.ReloadCmd()
}

func (m Model) ReloadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Show(context.Background())
		return LoadedMsg{Profile: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.width - 12
		if w > 50 {
			w = 50
		}
		if w > 0 {
			m.xpBar.Width = w
			m.goalBar.Width = w
		}

	case LoadedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.profile = msg.Profile
	}
	return m, nil
}

func (m Model) View() string {
	if m.errText != "" {
		return theme.Pane.Render(theme.Muted.Render("perfil: " + m.errText))
	}
	p := m.profile
	var sb strings.Builder

	name := p.Name
	if name == "" {
		name = "Perfil"
	}
	sb.WriteString(theme.Title.Render(name) + "\n\n")

	sb.WriteString(fmt.Sprintf("Nível %d  ·  %d XP\n", p.Level, p.CurrentXP))
	xpPct := 0.0
	if p.NextLevelXP > 0 {
		base := (p.Level - 1) * 100
		span := p.NextLevelXP - base
		if span > 0 {
			xpPct = float64(p.CurrentXP-base) / float64(span)
		}
	}
	sb.WriteString(m.xpBar.ViewAs(clamp01(xpPct)) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("próximo nível: %d XP", p.NextLevelXP)) + "\n\n")

	sb.WriteString(fmt.Sprintf("Sequência: %d dias\n\n", p.Streak))

	if p.Weight > 0 {
		sb.WriteString(fmt.Sprintf("Peso: %.1f kg", p.Weight))
		if p.TargetWeight > 0 {
			sb.WriteString(fmt.Sprintf("  (meta %.1f kg)", p.TargetWeight))
		}
		sb.WriteString("\n")
		if p.TargetWeight > 0 {
			sb.WriteString(m.goalBar.ViewAs(p.GoalProgressPct/100) + "\n")
		}
	}
	if p.BMILabel != "" {
		sb.WriteString(fmt.Sprintf("IMC: %.1f  (%s)\n", p.BMI, p.BMILabel))
	}
	if n := len(p.WeightHistory); n > 1 {
		first := p.WeightHistory[0]
		last := p.WeightHistory[n-1]
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d registros de peso, de %.1f a %.1f kg",
			n, first.Weight, last.Weight)) + "\n")
	}

	return theme.Pane.Width(maxInt(m.width-4, 20)).Render(sb.String())
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

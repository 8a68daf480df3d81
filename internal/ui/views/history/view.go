package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	historydto "jejum/internal/modules/history/dto"
	"jejum/internal/ui/theme"
)

type HistoryPort interface {
	List(ctx context.Context) ([]historydto.SessionOutput, error)
}

type LoadedMsg struct {
	Sessions []historydto.SessionOutput
	Err      error
}

type sessionItem struct {
	session historydto.SessionOutput
}

func (i sessionItem) Title() string {
	return i.session.Start.Format("02/01/2006 15:04")
}

func (i sessionItem) Description() string {
	mark := "✗"
	if i.session.Completed {
		mark = "✓"
	}
	return fmt.Sprintf("%s  %.1fh / %.0fh  %s", i.session.Mode, i.session.ActualHours, i.session.TargetHours, mark)
}

func (i sessionItem) FilterValue() string {
	return i.session.Start.Format("2006-01-02") + " " + i.session.Mode
}

type Model struct {
	port    HistoryPort
	list    list.Model
	detail  historydto.SessionOutput
	preview viewport.Model
	width   int
	height  int
}

func New(port HistoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Histórico"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, list: l, preview: vp}
}

func (m Model) Init() tea.Cmd {
	return m.ReloadCmd()
}

func (m Model) ReloadCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.List(context.Background())
		return LoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Histórico — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = sessionItem{session: s}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Sessions) > 0 {
			m.detail = msg.Sessions[0]
			m.preview.SetContent(m.renderDetail())
		}
	}

	var lCmd tea.Cmd
	prevIdx := m.list.Index()
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		if item, ok := m.list.SelectedItem().(sessionItem); ok {
			m.detail = item.session
			m.preview.SetContent(m.renderDetail())
		}
	}

	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Nenhum jejum registrado")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Start.Format("02/01/2006")) + "\n\n")
	sb.WriteString(theme.Muted.Render("início:  ") + d.Start.Format("15:04") + "\n")
	if !d.End.IsZero() {
		sb.WriteString(theme.Muted.Render("fim:     ") + d.End.Format("02/01 15:04") + "\n")
	}
	sb.WriteString(fmt.Sprintf("%s%.1fh / %.0fh\n", theme.Muted.Render("duração: "), d.ActualHours, d.TargetHours))
	sb.WriteString(theme.Muted.Render("modo:    ") + d.Mode + "\n")
	if d.Completed {
		sb.WriteString(theme.Clock.Render("meta atingida") + "\n")
	}
	if d.WaterCount > 0 {
		sb.WriteString(fmt.Sprintf("%s%d copos\n", theme.Muted.Render("água:    "), d.WaterCount))
	}
	if d.Mood != "" {
		sb.WriteString(theme.Muted.Render("humor:   ") + d.Mood + "\n")
	}
	if d.Intention != "" {
		sb.WriteString("\n" + theme.Muted.Render("intenção: ") + d.Intention + "\n")
	}
	if d.Notes != "" {
		sb.WriteString("\n" + d.Notes + "\n")
	}
	return sb.String()
}

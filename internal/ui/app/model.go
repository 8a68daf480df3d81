package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	fastingdto "jejum/internal/modules/fasting/dto"
	historydto "jejum/internal/modules/history/dto"
	profiledto "jejum/internal/modules/profile/dto"
	progressiondto "jejum/internal/modules/progression/dto"
	"jejum/internal/ui/theme"
	achievementsview "jejum/internal/ui/views/achievements"
	historyview "jejum/internal/ui/views/history"
	profileview "jejum/internal/ui/views/profile"
	timerview "jejum/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type fastingPort interface {
	Status(ctx context.Context) (fastingdto.StatusOutput, error)
	Start(ctx context.Context, hours float64, modeID, intention string) (fastingdto.StartOutput, error)
	AddWater(ctx context.Context) (fastingdto.WaterOutput, error)
	Finish(ctx context.Context, mood, lastMeal string) (fastingdto.FinishOutput, error)
	WaterReminderDue(ctx context.Context) (bool, error)
	MarkWaterReminded(ctx context.Context) error
}

type historyPort interface {
	List(ctx context.Context) ([]historydto.SessionOutput, error)
}

type profilePort interface {
	Show(ctx context.Context) (profiledto.ProfileOutput, error)
}

type progressionPort interface {
	Progress(ctx context.Context) (progressiondto.ProgressOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabHistory
	tabProfile
	tabAchievements
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Histórico", "Perfil", "Conquistas",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Help   key.Binding
	Quit   key.Binding
	Start  key.Binding
	Water  key.Binding
	Finish key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start 16h fast")),
		Water:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "log water")),
		Finish: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish fast")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Water, k.Finish},
		{k.Tab, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing and global keys;
// business logic sits behind port interfaces, rendering behind sub-views.
type Model struct {
	timerView   timerview.Model
	histView    historyview.Model
	profView    profileview.Model
	achView     achievementsview.Model
	activeTab   tabID
	keys        keyMap
	help        help.Model
	showHelp    bool
	status      string
	width       int
	height      int
}

func NewModel(
	fasting fastingPort,
	history historyPort,
	profile profilePort,
	progression progressionPort,
	spiritual bool,
) Model {
	return Model{
		timerView: timerview.New(fastingPortBridge{p: fasting}, spiritual),
		histView:  historyview.New(historyPortBridge{p: history}),
		profView:  profileview.New(profilePortBridge{p: profile}),
		achView:   achievementsview.New(progressionPortBridge{p: progression}),
		activeTab: tabTimer,
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "pronto",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.histView.Init(),
		m.profView.Init(),
		m.achView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case timerview.StartedMsg:
		if msg.Err != nil {
			m.status = "início falhou: " + msg.Err.Error()
		} else {
			m.status = "jejum iniciado: " + msg.Out.Mode
		}

	case timerview.FinishedMsg:
		if msg.Err != nil {
			m.status = "encerrar falhou: " + msg.Err.Error()
		} else {
			m.status = "jejum encerrado"
			cmds = append(cmds, m.histView.ReloadCmd(), m.profView.ReloadCmd(), m.achView.ReloadCmd())
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabHistory && m.histView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case "s":
			if m.activeTab == tabTimer && !m.timerView.Active() {
				cmds = append(cmds, m.timerView.StartCmd(0, "16h", ""))
			}
		case "w":
			if m.activeTab == tabTimer && m.timerView.Active() {
				cmds = append(cmds, m.timerView.AddWaterCmd())
			}
		case "f":
			if m.activeTab == tabTimer && m.timerView.Active() {
				cmds = append(cmds, m.timerView.FinishCmd("", ""))
			}
		}
	}

	// Timer messages carry the tick; always route them regardless of tab.
	var tCmd tea.Cmd
	m.timerView, tCmd = m.timerView.Update(msg)
	cmds = append(cmds, tCmd)

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHistory:
		m.histView, tabCmd = m.histView.Update(msg)
	case tabProfile:
		m.profView, tabCmd = m.profView.Update(msg)
	case tabAchievements:
		m.achView, tabCmd = m.achView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabHistory:
		return m.histView.View()
	case tabProfile:
		return m.profView.View()
	case tabAchievements:
		return m.achView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "jejum  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.timerView.Active() {
		left = theme.Hot.Render("● jejuando") + "  " + left
	}
	right := theme.Muted.Render("?:ajuda  tab:abas  q:sair")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.histView, _ = m.histView.Update(sz)
	m.profView, _ = m.profView.Update(sz)
	m.achView, _ = m.achView.Update(sz)
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port to the interface its sub-view needs.

type fastingPortBridge struct{ p fastingPort }

func (b fastingPortBridge) Status(ctx context.Context) (fastingdto.StatusOutput, error) {
	return b.p.Status(ctx)
}
func (b fastingPortBridge) Start(ctx context.Context, hours float64, modeID, intention string) (fastingdto.StartOutput, error) {
	return b.p.Start(ctx, hours, modeID, intention)
}
func (b fastingPortBridge) AddWater(ctx context.Context) (fastingdto.WaterOutput, error) {
	return b.p.AddWater(ctx)
}
func (b fastingPortBridge) Finish(ctx context.Context, mood, lastMeal string) (fastingdto.FinishOutput, error) {
	return b.p.Finish(ctx, mood, lastMeal)
}
func (b fastingPortBridge) WaterReminderDue(ctx context.Context) (bool, error) {
	return b.p.WaterReminderDue(ctx)
}
func (b fastingPortBridge) MarkWaterReminded(ctx context.Context) error {
	return b.p.MarkWaterReminded(ctx)
}

type historyPortBridge struct{ p historyPort }

func (b historyPortBridge) List(ctx context.Context) ([]historydto.SessionOutput, error) {
	return b.p.List(ctx)
}

type profilePortBridge struct{ p profilePort }

func (b profilePortBridge) Show(ctx context.Context) (profiledto.ProfileOutput, error) {
	return b.p.Show(ctx)
}

type progressionPortBridge struct{ p progressionPort }

func (b progressionPortBridge) Progress(ctx context.Context) (progressiondto.ProgressOutput, error) {
	return b.p.Progress(ctx)
}

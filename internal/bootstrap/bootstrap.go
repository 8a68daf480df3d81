package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	coachinadapter "jejum/internal/modules/coach/adapter/in"
	coachoutadapter "jejum/internal/modules/coach/adapter/out"
	coachservice "jejum/internal/modules/coach/service"
	coachusecase "jejum/internal/modules/coach/usecase"
	fastinginadapter "jejum/internal/modules/fasting/adapter/in"
	fastingoutadapter "jejum/internal/modules/fasting/adapter/out"
	fastingservice "jejum/internal/modules/fasting/service"
	fastingusecase "jejum/internal/modules/fasting/usecase"
	historyinadapter "jejum/internal/modules/history/adapter/in"
	historyservice "jejum/internal/modules/history/service"
	historyusecase "jejum/internal/modules/history/usecase"
	profileinadapter "jejum/internal/modules/profile/adapter/in"
	profileusecase "jejum/internal/modules/profile/usecase"
	progressioninadapter "jejum/internal/modules/progression/adapter/in"
	progressionusecase "jejum/internal/modules/progression/usecase"
	statsinadapter "jejum/internal/modules/stats/adapter/in"
	statsoutadapter "jejum/internal/modules/stats/adapter/out"
	statsusecase "jejum/internal/modules/stats/usecase"
	"jejum/internal/platform/clock"
	"jejum/internal/platform/config"
	"jejum/internal/platform/id"
	"jejum/internal/state"
	uiapp "jejum/internal/ui/app"
)

type App struct {
	FastingCLI     fastinginadapter.CLIHandler
	HistoryCLI     historyinadapter.CLIHandler
	ProfileCLI     profileinadapter.CLIHandler
	ProgressionCLI progressioninadapter.CLIHandler
	StatsCLI       statsinadapter.CLIHandler
	CoachCLI       coachinadapter.CLIHandler
	States         *state.FileStore
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	states := state.NewFileStore(cfg.StatePath)

	index, err := statsoutadapter.NewSQLiteSessionIndex(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session index: %w", err)
	}

	fastingUC := fastingusecase.NewInteractor(
		fastingservice.NewFastingService(clk, ids),
		clk,
		states,
		fastingoutadapter.NewMarkdownNoteStore(cfg.NotesDir),
		index,
	)

	historyUC := historyusecase.NewInteractor(
		historyservice.NewHistoryService(ids),
		states,
		index,
	)

	profileUC := profileusecase.NewInteractor(clk, states)
	progressionUC := progressionusecase.NewInteractor(states)
	statsUC := statsusecase.NewInteractor(clk, states, index)

	coachUC := coachusecase.NewInteractor(coachservice.NewCoachService(
		coachoutadapter.NewFileManifestStore(cfg.DataDir),
		coachoutadapter.NewGRPCHost(),
	))

	return &App{
		FastingCLI:     fastinginadapter.NewCLIHandler(fastingUC),
		HistoryCLI:     historyinadapter.NewCLIHandler(historyUC),
		ProfileCLI:     profileinadapter.NewCLIHandler(profileUC),
		ProgressionCLI: progressioninadapter.NewCLIHandler(progressionUC),
		StatsCLI:       statsinadapter.NewCLIHandler(statsUC),
		CoachCLI:       coachinadapter.NewCLIHandler(coachUC),
		States:         states,
	}, nil
}

func RunTUI(app *App) error {
	spiritual := false
	if st, err := app.States.Load(context.Background()); err == nil {
		spiritual = st.User.ShowSpiritualContent
	}
	model := uiapp.NewModel(app.FastingCLI, app.HistoryCLI, app.ProfileCLI, app.ProgressionCLI, spiritual)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

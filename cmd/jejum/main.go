package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"jejum/internal/bootstrap"
	coachdto "jejum/internal/modules/coach/dto"
	historydto "jejum/internal/modules/history/dto"
	profiledto "jejum/internal/modules/profile/dto"
	"jejum/internal/platform/config"
	"jejum/internal/state"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "jejum",
		Short:         "Intermittent fasting companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.local/share/jejum)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newFastCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newProfileCmd(&dataDir))
	root.AddCommand(newAchievementsCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newDataCmd(&dataDir))
	root.AddCommand(newCoachCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	return app, cfg, err
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run jejum terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newFastCmd(dataDir *string) *cobra.Command {
	fast := &cobra.Command{Use: "fast", Short: "Active fast commands"}

	var hours float64
	var mode, intention string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start a fast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FastingCLI.Start(context.Background(), hours, mode, intention)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fast started: %s, target %.1fh (id %s)\n", out.Mode, out.TargetHours, out.SessionID)
			return nil
		},
	}
	startCmd.Flags().Float64Var(&hours, "hours", 0, "target duration in hours (overrides mode preset)")
	startCmd.Flags().StringVar(&mode, "mode", "16h", "fasting mode: 12h|14h|16h|18h|20h|23h|custom")
	startCmd.Flags().StringVar(&intention, "intention", "", "intention for this fast")

	fast.AddCommand(startCmd)

	fast.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the active fast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FastingCLI.Status(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s  target %.1fh  started %s\n", out.Mode, out.TargetHours, out.StartedAt.Local().Format("02/01 15:04"))
			_, _ = fmt.Fprintf(w, "elapsed %s  remaining %s  %.1f%%\n", out.ElapsedClock, out.RemainingClock, out.Percentage)
			_, _ = fmt.Fprintf(w, "%s — %s\n", out.StageTitle, out.StageDesc)
			_, _ = fmt.Fprintf(w, "water %d cups (goal %.1fL)\n", out.WaterCount, out.WaterGoalLiters)
			if out.Intention != "" {
				_, _ = fmt.Fprintf(w, "intention: %s\n", out.Intention)
			}
			return nil
		},
	})

	water := &cobra.Command{Use: "water", Short: "Track water intake"}
	water.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Log one cup of water",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FastingCLI.AddWater(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "water: %d cups\n", out.WaterCount)
			return nil
		},
	})
	water.AddCommand(&cobra.Command{
		Use:   "remove",
		Short: "Remove one cup of water",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FastingCLI.RemoveWater(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "water: %d cups\n", out.WaterCount)
			return nil
		},
	})
	fast.AddCommand(water)

	fast.AddCommand(&cobra.Command{
		Use:   "journal <text>",
		Short: "Set journal notes on the active fast",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.FastingCLI.SetNotes(context.Background(), strings.Join(args, " ")); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "journal updated")
			return nil
		},
	})

	var mood, lastMeal string
	finishCmd := &cobra.Command{
		Use:   "finish",
		Short: "Finish the active fast",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.FastingCLI.Finish(context.Background(), mood, lastMeal)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "fast finished: %.1fh, completed=%t\n", out.ActualHours, out.Completed)
			_, _ = fmt.Fprintf(w, "+%d XP (total %d, level %d) streak %d\n", out.XPEarned, out.TotalXP, out.Level, out.Streak)
			if out.LeveledUp {
				_, _ = fmt.Fprintln(w, "level up!")
			}
			for _, a := range out.Unlocked {
				_, _ = fmt.Fprintf(w, "achievement unlocked: %s %s\n", a.Icon, a.Title)
			}
			if out.NotePath != "" {
				_, _ = fmt.Fprintf(w, "note: %s\n", out.NotePath)
			}
			return nil
		},
	}
	finishCmd.Flags().StringVar(&mood, "mood", "", "mood: great|good|neutral|bad|terrible")
	finishCmd.Flags().StringVar(&lastMeal, "last-meal", "", "what broke the fast")
	fast.AddCommand(finishCmd)

	return fast
}

func parseWhen(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q", value)
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Fasting history commands"}

	history.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List past fasts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			sessions, err := app.HistoryCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no fasts recorded")
				return nil
			}
			for _, s := range sessions {
				mark := " "
				if s.Completed {
					mark = "✓"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s  %.1fh/%.0fh  id=%s\n",
					mark, s.Start.Local().Format("2006-01-02 15:04"), s.Mode, s.ActualHours, s.TargetHours, s.ID)
			}
			return nil
		},
	})

	var start, end, mode, intention, notes, mood, lastMeal string
	var target float64
	var waterCount int

	recordFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&start, "start", "", "start time (RFC3339 or '2006-01-02 15:04')")
		cmd.Flags().StringVar(&end, "end", "", "end time")
		cmd.Flags().Float64Var(&target, "target", 0, "target hours")
		cmd.Flags().StringVar(&mode, "mode", "", "fasting mode")
		cmd.Flags().StringVar(&intention, "intention", "", "intention")
		cmd.Flags().StringVar(&notes, "notes", "", "journal notes")
		cmd.Flags().StringVar(&mood, "mood", "", "mood")
		cmd.Flags().StringVar(&lastMeal, "last-meal", "", "last meal")
		cmd.Flags().IntVar(&waterCount, "water", 0, "cups of water (-1 clears on edit)")
	}

	buildInput := func(id string) (historydto.RecordInput, error) {
		input := historydto.RecordInput{
			ID:          id,
			TargetHours: target,
			ModeID:      mode,
			Intention:   intention,
			Notes:       notes,
			Mood:        mood,
			LastMeal:    lastMeal,
			WaterCount:  waterCount,
		}
		if start != "" {
			t, err := parseWhen(start)
			if err != nil {
				return historydto.RecordInput{}, err
			}
			input.Start = t
		}
		if end != "" {
			t, err := parseWhen(end)
			if err != nil {
				return historydto.RecordInput{}, err
			}
			input.End = t
		}
		return input, nil
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a past fast manually",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			input, err := buildInput("")
			if err != nil {
				return err
			}
			out, err := app.HistoryCLI.Add(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %.1fh completed=%t (id %s)\n", out.ActualHours, out.Completed, out.ID)
			return nil
		},
	}
	recordFlags(addCmd)
	history.AddCommand(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recorded fast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			input, err := buildInput(args[0])
			if err != nil {
				return err
			}
			out, err := app.HistoryCLI.Edit(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %.1fh completed=%t (id %s)\n", out.ActualHours, out.Completed, out.ID)
			return nil
		},
	}
	recordFlags(editCmd)
	history.AddCommand(editCmd)

	history.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded fast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.HistoryCLI.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	})

	return history
}

func newProfileCmd(dataDir *string) *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Local profile commands"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			p, err := app.ProfileCLI.Show(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			name := p.Name
			if name == "" {
				name = "(unnamed)"
			}
			_, _ = fmt.Fprintf(w, "%s  level %d  %d XP (next %d)  streak %d\n", name, p.Level, p.CurrentXP, p.NextLevelXP, p.Streak)
			if p.Weight > 0 {
				_, _ = fmt.Fprintf(w, "weight %.1fkg", p.Weight)
				if p.TargetWeight > 0 {
					_, _ = fmt.Fprintf(w, " target %.1fkg (%.0f%%)", p.TargetWeight, p.GoalProgressPct)
				}
				_, _ = fmt.Fprintln(w)
			}
			if p.BMILabel != "" {
				_, _ = fmt.Fprintf(w, "BMI %.1f (%s)\n", p.BMI, p.BMILabel)
			}
			_, _ = fmt.Fprintf(w, "water reminder: enabled=%t every %dmin\n", p.WaterNotificationEnabled, p.WaterNotificationInterval)
			return nil
		},
	})

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			input := profiledto.SetInput{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				v, _ := flags.GetString("name")
				input.Name = &v
			}
			if flags.Changed("weight") {
				v, _ := flags.GetFloat64("weight")
				input.Weight = &v
			}
			if flags.Changed("target-weight") {
				v, _ := flags.GetFloat64("target-weight")
				input.TargetWeight = &v
			}
			if flags.Changed("height") {
				v, _ := flags.GetFloat64("height")
				input.Height = &v
			}
			if flags.Changed("theme") {
				v, _ := flags.GetString("theme")
				input.Theme = &v
			}
			if flags.Changed("spiritual") {
				v, _ := flags.GetBool("spiritual")
				input.ShowSpiritualContent = &v
			}
			if flags.Changed("health-stats") {
				v, _ := flags.GetBool("health-stats")
				input.ShowHealthStats = &v
			}
			if flags.Changed("water-reminder") {
				v, _ := flags.GetBool("water-reminder")
				input.WaterNotificationEnabled = &v
			}
			if flags.Changed("water-interval") {
				v, _ := flags.GetInt("water-interval")
				input.WaterNotificationInterval = &v
			}
			if flags.Changed("onboarded") {
				v, _ := flags.GetBool("onboarded")
				input.OnboardingCompleted = &v
			}
			p, err := app.ProfileCLI.Set(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile updated (level %d, %d XP)\n", p.Level, p.CurrentXP)
			return nil
		},
	}
	setCmd.Flags().String("name", "", "display name")
	setCmd.Flags().Float64("weight", 0, "current weight (kg)")
	setCmd.Flags().Float64("target-weight", 0, "target weight (kg)")
	setCmd.Flags().Float64("height", 0, "height (cm)")
	setCmd.Flags().String("theme", "", "theme: light|dark")
	setCmd.Flags().Bool("spiritual", false, "show spiritual quotes")
	setCmd.Flags().Bool("health-stats", false, "show health stats")
	setCmd.Flags().Bool("water-reminder", false, "enable water reminders")
	setCmd.Flags().Int("water-interval", 60, "water reminder interval (minutes)")
	setCmd.Flags().Bool("onboarded", false, "mark onboarding as completed")
	profile.AddCommand(setCmd)

	profile.AddCommand(&cobra.Command{
		Use:   "weight <kg>",
		Short: "Record today's weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kg float64
			if _, err := fmt.Sscanf(args[0], "%f", &kg); err != nil {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ProfileCLI.RecordWeight(context.Background(), kg)
			if err != nil {
				return err
			}
			verb := "recorded"
			if out.Replaced {
				verb = "updated"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weight %s: %.1fkg (%s)\n", verb, out.Weight, out.Date.Local().Format("2006-01-02"))
			return nil
		},
	})

	return profile
}

func newAchievementsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			p, err := app.ProgressionCLI.Progress(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "unlocked %d/%d  (level %d, %d XP, streak %d)\n", p.Unlocked, p.Total, p.Level, p.CurrentXP, p.Streak)
			for _, a := range p.Achievements {
				mark := " "
				when := ""
				if a.Unlocked {
					mark = "✓"
					if !a.DateUnlocked.IsZero() {
						when = "  " + a.DateUnlocked.Local().Format("2006-01-02")
					}
				}
				_, _ = fmt.Fprintf(w, "%s %s %s — %s%s\n", mark, a.Icon, a.Title, a.Description, when)
			}
			return nil
		},
	}
}

func newStatsCmd(dataDir *string) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate fasting stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			s, err := app.StatsCLI.Summary(context.Background(), days)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			window := "all time"
			if s.Days > 0 {
				window = fmt.Sprintf("last %d days", s.Days)
			}
			_, _ = fmt.Fprintf(w, "%s: %d fasts, %d completed (%.0f%%)\n", window, s.TotalFasts, s.CompletedFasts, s.CompletionRate)
			_, _ = fmt.Fprintf(w, "total %.1fh  avg %.1fh  longest %.1fh  water %d cups\n", s.TotalHours, s.AverageHours, s.LongestHours, s.TotalWater)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "window in days (0 = all time)")
	return cmd
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the session index from the state file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.StatsCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d sessions\n", out.Indexed)
			return nil
		},
	}
}

func newDataCmd(dataDir *string) *cobra.Command {
	data := &cobra.Command{Use: "data", Short: "Backup and restore"}

	var outPath string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			payload, err := app.States.ExportJSON(context.Background())
			if err != nil {
				return err
			}
			if outPath == "" {
				_, _ = cmd.OutOrStdout().Write(payload)
				return nil
			}
			if err := os.WriteFile(outPath, payload, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outPath)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	data.AddCommand(exportCmd)

	var yes bool
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("import replaces all current data; re-run with --yes to confirm")
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			imported, err := state.ValidateImport(raw)
			if err != nil {
				return err
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.States.Save(context.Background(), imported); err != nil {
				return err
			}
			if _, err := app.StatsCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d sessions\n", len(imported.History))
			return nil
		},
	}
	importCmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing all data")
	data.AddCommand(importCmd)

	return data
}

func newCoachCmd(dataDir *string) *cobra.Command {
	coach := &cobra.Command{Use: "coach", Short: "Coach plugin commands"}

	coach.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List installed coach plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			plugins, err := app.CoachCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins installed")
				return nil
			}
			for _, p := range plugins {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s enabled=%t caps=%s\n", p.Name, p.Version, p.Enabled, strings.Join(p.Capabilities, ","))
			}
			return nil
		},
	})

	coach.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check plugin health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			results, err := app.CoachCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s binary=%t checksum=%t lifecycle=%t", r.Name, r.BinaryReachable, r.ChecksumValid, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	coach.AddCommand(&cobra.Command{
		Use:   "commands <plugin>",
		Short: "List a plugin's commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			commands, err := app.CoachCLI.ListCommands(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, c := range commands {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %s — %s\n", c.ID, c.Kind, c.Title, c.Description)
			}
			return nil
		},
	})

	var inputJSON string
	execCmd := &cobra.Command{
		Use:   "exec <plugin> <command>",
		Short: "Run a plugin report command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoach(cmd, *dataDir, args[0], args[1], inputJSON, false)
		},
	}
	execCmd.Flags().StringVar(&inputJSON, "input-json", "", "JSON input for the command")
	coach.AddCommand(execCmd)

	var analyzeJSON string
	analyzeCmd := &cobra.Command{
		Use:   "analyze <plugin> <command>",
		Short: "Run a plugin analyze command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoach(cmd, *dataDir, args[0], args[1], analyzeJSON, true)
		},
	}
	analyzeCmd.Flags().StringVar(&analyzeJSON, "input-json", "", "JSON input for the command")
	coach.AddCommand(analyzeCmd)

	return coach
}

func runCoach(cmd *cobra.Command, dataDir, pluginName, commandID, inputJSON string, analyze bool) error {
	app, cfg, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	input := coachdto.ExecuteInput{
		PluginName: pluginName,
		CommandID:  commandID,
		InputJSON:  inputJSON,
		DataDir:    cfg.DataDir,
		StatePath:  cfg.StatePath,
	}
	var out coachdto.ExecuteOutput
	if analyze {
		out, err = app.CoachCLI.Analyze(context.Background(), input)
	} else {
		out, err = app.CoachCLI.Execute(context.Background(), input)
	}
	if err != nil {
		return err
	}
	if out.Stdout != "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Stdout)
		if !strings.HasSuffix(out.Stdout, "\n") {
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
		}
	}
	if out.OutputJSON != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.OutputJSON)
	}
	if out.Stderr != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.Stderr)
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("plugin command exited with code %d", out.ExitCode)
	}
	return nil
}

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extdeck/internal/controller"
	"github.com/alexisbeaulieu97/extdeck/internal/tui/dashboard"
)

func newDashboardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive TUI to browse, filter, toggle and remove extensions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}

	return cmd
}

type program interface {
	Run() (tea.Model, error)
}

// newProgram is swapped in tests so no terminal is required.
var newProgram = func(m tea.Model) program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	app, err := openApp(cmd, flags, "launch dashboard", true)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	ctrl := controller.New(app.Catalog, app.Themes, app.Log)
	m := dashboard.NewModel(ctrl, dashboard.Options{
		ConfirmRemove: app.Config.ConfirmRemove,
		Unicode:       resolveUnicode(app.Config.Unicode, cmd.OutOrStdout()),
	}, app.Log)

	app.Log.With("theme", ctrl.Theme().String()).Info("launching dashboard")

	if _, err := newProgram(m).Run(); err != nil {
		app.Log.Error(err, "dashboard execution failed")
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	counts := ctrl.Counts()
	app.Log.WithFields(map[string]any{
		"remaining": counts.All,
		"active":    counts.Active,
	}).Info("dashboard closed")

	return nil
}

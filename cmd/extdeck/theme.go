package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extdeck/internal/preferences"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored display theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemes(cmd, flags, "read theme", func(themes *preferences.Store) error {
				fmt.Fprintln(cmd.OutOrStdout(), themes.Read())
				return nil
			})
		},
	}

	cmd.AddCommand(newThemeSetCmd(flags))
	cmd.AddCommand(newThemeToggleCmd(flags))

	return cmd
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Store a display theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(preferences.ThemeLight), string(preferences.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := preferences.ParseTheme(args[0])
			if err != nil {
				return newCommandError("set theme", "parsing theme", err, "Use 'light' or 'dark'.")
			}
			return withThemes(cmd, flags, "set theme", func(themes *preferences.Store) error {
				return writeTheme(cmd, themes, theme)
			})
		},
	}
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemes(cmd, flags, "toggle theme", func(themes *preferences.Store) error {
				return writeTheme(cmd, themes, themes.Read().Toggle())
			})
		},
	}
}

func withThemes(cmd *cobra.Command, flags *rootFlags, operation string, fn func(*preferences.Store) error) error {
	app, err := openApp(cmd, flags, operation, false)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := fn(app.Themes); err != nil {
		return newCommandError(operation, "writing preference store", err, "Check preferences.path permissions and try again.")
	}
	return nil
}

func writeTheme(cmd *cobra.Command, themes *preferences.Store, theme preferences.Theme) error {
	if err := themes.Write(theme); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
	return nil
}

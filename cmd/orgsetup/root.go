package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"orgsetup/internal/config"
	"orgsetup/internal/debug"
	"orgsetup/internal/ui"
	"orgsetup/internal/ui/theme"
)

// flagKeys maps command line flags onto the config keys they override.
var flagKeys = map[string]string{
	"api-url":       config.KeyAPIBaseURL,
	"api-timeout":   config.KeyAPITimeout,
	"web-url":       config.KeyWebBaseURL,
	"state-path":    config.KeyStatePath,
	"theme":         config.KeyTheme,
	"debug":         config.KeyDebug,
	"output-format": config.KeyOutputFormat,
	"start":         config.KeyStartPath,
}

func newRootCmd(factory programFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orgsetup",
		Short: "Create and switch organizations from the terminal",
		Long: `orgsetup collects an organization's name, description and emoji cover,
submits it to the backend and opens the new organization's workspace.

Without a subcommand it starts the interactive form.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, factory)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("api-url", "", "Backend API base URL")
	pf.Duration("api-timeout", 0, "Backend request timeout (0 for none)")
	pf.String("web-url", "", "Web app base URL used for workspace links")
	pf.String("state-path", "", "Path to the local state database")
	pf.String("theme", "", "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	pf.String("output-format", "", "Markdown style (rich, light, dark, plain)")
	pf.Bool("debug", false, "Write a debug log to ~/.orgsetup/debug.log")

	cmd.Flags().String("start", "", "In-app path to open first (e.g. /organization)")

	cmd.AddCommand(
		newCreateCmd(),
		newCurrentCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setup loads configuration, applies explicitly set flags and starts the
// debug log and theme.
func setup(cmd *cobra.Command) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("initialize config: %w", err)
	}
	if err := config.ApplyOverrides(flagOverrides(cmd)); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}
	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		return fmt.Errorf("initialize debug log: %w", err)
	}
	name := config.GetString(config.KeyTheme)
	if name != "" && !theme.SetTheme(name) {
		debug.Event("cli", "theme.unknown", "theme", name)
	}
	debug.Event("cli", "start", "command", cmd.CommandPath(), "version", Version)
	return nil
}

// flagOverrides collects the flags that were set on the command line.
// Flags left at their defaults never mask config files or the environment.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !cmd.Flags().Changed(name) {
			continue
		}
		overrides[key] = strings.TrimSpace(f.Value.String())
	}
	return overrides
}

func runTUI(cmd *cobra.Command, factory programFactory) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg := ui.Config{
		Client:        sess.client,
		Store:         sess.store,
		History:       sess.history,
		DefaultCover:  config.GetString(config.KeyDefaultCover),
		StartPath:     config.GetString(config.KeyStartPath),
		WebBaseURL:    config.GetString(config.KeyWebBaseURL),
		OutputFormat:  config.GetString(config.KeyOutputFormat),
		Version:       Version,
		OnThemeChange: config.SaveTheme,
	}
	return runProgram(cfg, ui.NewApp, factory)
}

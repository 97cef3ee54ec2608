package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/projtimer/internal/config"
	"github.com/sadopc/projtimer/internal/store"
	"github.com/sadopc/projtimer/internal/tui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projtimer",
		Short: "Name a project, time it, keep a list of sessions",
		Long: `projtimer is a single-screen stopwatch for projects.

Type a project name, press enter to start the timer and enter again to
stop it and add the session to the list. Sessions live only as long as
the screen; they are printed when you quit.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("config", "", "config file (default <user config dir>/projtimer/config.yaml)")
	cmd.Flags().String("theme", "", "colour theme: auto, light or dark")
	cmd.Flags().String("export-dir", "", "default directory for exports")
	cmd.Flags().String("log-file", "", "write debug log to this file")
	return cmd
}

// loadConfig resolves file, environment and flag settings, in that order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if fs.Changed("theme") {
		v, _ := fs.GetString("theme")
		cfg.Theme = config.Theme(v)
	}
	if fs.Changed("export-dir") {
		cfg.ExportDir, _ = fs.GetString("export-dir")
	}
	if fs.Changed("log-file") {
		cfg.LogFile, _ = fs.GetString("log-file")
	}
	return cfg, cfg.Validate()
}

func run(cfg config.Config, out io.Writer) error {
	if cfg.LogFile != "" {
		lf, err := tea.LogToFile(cfg.LogFile, "projtimer")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer lf.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	theme := resolveTheme(cfg.Theme, lipgloss.HasDarkBackground)
	log.Printf("starting: theme=%s export_dir=%s", theme, cfg.ExportDir)

	s, err := store.NewMemory()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer s.Close()

	app := tui.NewApp(s, tui.Options{
		Theme:        theme,
		ExportDir:    cfg.ExportDir,
		ExportFormat: cfg.ExportFormat,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}

	var sessions []store.Session
	if a, ok := final.(tui.App); ok {
		a.Close()
		sessions = a.Sessions()
	}
	log.Printf("exiting with %d sessions", len(sessions))

	printSummary(out, sessions, isTerminal(out))
	return nil
}

// resolveTheme turns the configured theme into a concrete palette,
// asking the terminal only for "auto".
func resolveTheme(t config.Theme, hasDarkBackground func() bool) tui.Theme {
	switch t {
	case config.ThemeDark:
		return tui.ThemeDark
	case config.ThemeLight:
		return tui.ThemeLight
	}
	if hasDarkBackground() {
		return tui.ThemeDark
	}
	return tui.ThemeLight
}

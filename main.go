package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	theme      string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "launchpad",
		Short:         "Pick a group of apps and launch them all",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	root.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme override: auto, light, or dark")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every launch")

	root.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a starter config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path, _ = resolveConfigPath()
			}
			if err := runInit(path); err != nil {
				return fmt.Errorf("init error: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s. Edit it, then re-run launchpad.\n", path)
			return nil
		},
	})
	return root
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	path := opts.configPath
	if path == "" {
		resolved, err := resolveConfigPath()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				if err := offerInit(resolved); err != nil {
					return fmt.Errorf("config error: %w", err)
				}
				return nil
			}
			return fmt.Errorf("config error: %w", err)
		}
		path = resolved
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger.Debug("config loaded", "path", path, "groups", len(cfg.Groups))

	if strings.TrimSpace(opts.theme) != "" {
		cfg.Theme = strings.ToLower(strings.TrimSpace(opts.theme))
	}
	applyTheme(cfg.Theme)

	out, err := runPicker(cmd.Context(), cfg, NewLauncher(cfg.Shell, logger), tea.WithAltScreen())
	if err != nil {
		return err
	}
	if out.Confirmed() {
		logger.Info("group launched", "group", out.Group.Name, "apps", out.Group.names(), "failed", len(out.Errors))
	}
	reportLaunchErrors(cmd.ErrOrStderr(), out.Errors)
	return nil
}

func reportLaunchErrors(w io.Writer, errs []*LaunchError) {
	for _, err := range errs {
		fmt.Fprintf(w, "launch error: %v\n", err)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func applyTheme(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		if os.Getenv("TMUX") != "" {
			if dark, ok := detectDarkBackgroundFromEnv(); ok {
				lipgloss.SetHasDarkBackground(dark)
			}
		}
	}
}

func detectDarkBackgroundFromEnv() (bool, bool) {
	value := strings.TrimSpace(os.Getenv("COLORFGBG"))
	if value == "" {
		return false, false
	}
	parts := strings.Split(value, ";")
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" || strings.EqualFold(last, "default") {
		return false, false
	}
	bg, err := strconv.Atoi(last)
	if err != nil {
		return false, false
	}
	return bg <= 6, true
}

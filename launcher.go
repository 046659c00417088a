package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

var errEmptyCommand = errors.New("empty command")

// LaunchError reports that one app of a group could not be started.
type LaunchError struct {
	App string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s: %v", e.App, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launcher starts apps as independent processes and never waits on them.
type Launcher struct {
	shell  string
	logger *slog.Logger
	start  func(*exec.Cmd) error
}

func NewLauncher(shell string, logger *slog.Logger) *Launcher {
	if shell == "" {
		shell = defaultShell()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{shell: shell, logger: logger, start: startDetached}
}

// Launch returns once the process exists or could not be created.
func (l *Launcher) Launch(app App) error {
	if strings.TrimSpace(app.Command) == "" {
		return &LaunchError{App: app.Name, Err: errEmptyCommand}
	}

	cmd := l.command(app)
	if err := l.start(cmd); err != nil {
		l.logger.Debug("launch failed", "app", app.Name, "cmd", app.Command, "args", app.Args, "error", err)
		return &LaunchError{App: app.Name, Err: err}
	}

	pid := 0
	if cmd.Process != nil {
		pid = cmd.Process.Pid
		_ = cmd.Process.Release()
	}
	l.logger.Info("launched", "app", app.Name, "pid", pid)
	return nil
}

// LaunchGroup tries every app in order and returns the failures.
func (l *Launcher) LaunchGroup(group Group) []*LaunchError {
	var errs []*LaunchError
	for _, app := range group.Apps {
		if err := l.Launch(app); err != nil {
			var launchErr *LaunchError
			if !errors.As(err, &launchErr) {
				launchErr = &LaunchError{App: app.Name, Err: err}
			}
			errs = append(errs, launchErr)
		}
	}
	return errs
}

func (l *Launcher) command(app App) *exec.Cmd {
	var cmd *exec.Cmd
	if app.Shell {
		cmd = exec.Command(l.shell, shellFlag, buildShellScript(app))
		cmd.Env = envWithShell(l.shell)
	} else {
		cmd = exec.Command(app.Command, app.Args...)
	}
	// Nil standard streams are wired to the null device, so the child holds
	// no handle on our terminal.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detachCommand(cmd)
	return cmd
}

func startDetached(cmd *exec.Cmd) error {
	return cmd.Start()
}

func buildShellScript(app App) string {
	parts := make([]string, 0, len(app.Args)+1)
	if command := strings.TrimSpace(app.Command); command != "" {
		parts = append(parts, command)
	}
	for _, arg := range app.Args {
		if strings.TrimSpace(arg) != "" {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, " ")
}

func envWithShell(shell string) []string {
	env := os.Environ()
	if shell == "" {
		return env
	}
	for i, entry := range env {
		if strings.HasPrefix(entry, "SHELL=") {
			env[i] = "SHELL=" + shell
			return env
		}
	}
	return append(env, "SHELL="+shell)
}

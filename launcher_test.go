package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"testing"
)

func fakeLauncher(fail map[string]bool) (*Launcher, *[]string) {
	started := []string{}
	l := NewLauncher("/bin/sh", slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.start = func(cmd *exec.Cmd) error {
		name := cmd.Args[0]
		started = append(started, strings.Join(cmd.Args, " "))
		if fail[name] {
			return errors.New("exec: not found")
		}
		return nil
	}
	return l, &started
}

func TestLaunchGroupContinuesAfterFailure(t *testing.T) {
	l, started := fakeLauncher(map[string]bool{"broken": true})
	group := Group{Name: "Study", Apps: AppList{
		{Name: "first", Command: "obsidian"},
		{Name: "second", Command: "broken"},
		{Name: "third", Command: "code", Args: []string{"--new-window"}},
	}}

	errs := l.LaunchGroup(group)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].App != "second" {
		t.Fatalf("expected error for second, got %q", errs[0].App)
	}

	want := []string{"obsidian", "broken", "code --new-window"}
	if len(*started) != len(want) {
		t.Fatalf("expected %v, got %v", want, *started)
	}
	for i := range want {
		if (*started)[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, *started)
		}
	}
}

func TestLaunchGroupEmpty(t *testing.T) {
	l, started := fakeLauncher(nil)
	if errs := l.LaunchGroup(Group{Name: "Nothing"}); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if len(*started) != 0 {
		t.Fatalf("expected nothing started, got %v", *started)
	}
}

func TestLaunchEmptyCommand(t *testing.T) {
	l, started := fakeLauncher(nil)
	err := l.Launch(App{Name: "blank", Command: "  "})
	if !errors.Is(err, errEmptyCommand) {
		t.Fatalf("expected errEmptyCommand, got %v", err)
	}
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) || launchErr.App != "blank" {
		t.Fatalf("expected LaunchError for blank, got %v", err)
	}
	if len(*started) != 0 {
		t.Fatalf("expected nothing started, got %v", *started)
	}
}

func TestLaunchShellApp(t *testing.T) {
	l, started := fakeLauncher(nil)
	app := App{Name: "containers", Command: "docker start $(docker ps -aq)", Shell: true}
	if err := l.Launch(app); err != nil {
		t.Fatalf("launch: %v", err)
	}
	want := "/bin/sh " + shellFlag + " docker start $(docker ps -aq)"
	if len(*started) != 1 || (*started)[0] != want {
		t.Fatalf("expected %q, got %v", want, *started)
	}
}

func TestLaunchCommandDetachesStreams(t *testing.T) {
	l := NewLauncher("/bin/sh", nil)
	cmd := l.command(App{Name: "code", Command: "code"})
	if cmd.Stdin != nil || cmd.Stdout != nil || cmd.Stderr != nil {
		t.Fatalf("expected standard streams left unset")
	}
	if cmd.SysProcAttr == nil {
		t.Fatalf("expected SysProcAttr to be set")
	}
}

func TestLaunchLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	l := NewLauncher("/bin/sh", slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	l.start = func(*exec.Cmd) error { return errors.New("permission denied") }

	if err := l.Launch(App{Name: "steam", Command: "steam"}); err == nil {
		t.Fatalf("expected error")
	}
	out := buf.String()
	if !strings.Contains(out, "launch failed") || !strings.Contains(out, "app=steam") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestLaunchErrorMessage(t *testing.T) {
	err := &LaunchError{App: "discord", Err: errors.New("not found")}
	if err.Error() != "discord: not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestBuildShellScript(t *testing.T) {
	script := buildShellScript(App{Command: "echo", Args: []string{"$HOME", "|", "wc -c"}, Shell: true})
	if script != "echo $HOME | wc -c" {
		t.Fatalf("unexpected script: %s", script)
	}
}

func TestEnvWithShell(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")
	env := envWithShell("/bin/zsh")
	found := false
	for _, entry := range env {
		if entry == "SHELL=/bin/bash" {
			t.Fatalf("expected SHELL to be replaced")
		}
		if entry == "SHELL=/bin/zsh" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SHELL=/bin/zsh in env")
	}
}

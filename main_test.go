package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootFailsFastOnEmptyConfig(t *testing.T) {
	path := writeConfig(t, "config.yml", "title: empty\ngroups: []\n")

	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", path})

	err := cmd.ExecuteContext(context.Background())
	if !errors.Is(err, errNoGroups) {
		t.Fatalf("expected errNoGroups, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "config error:") {
		t.Fatalf("expected config error prefix, got %q", err.Error())
	}
}

func TestRootMissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")})
	if err := cmd.Execute(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestInitCommandWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchpad", "config.yml")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"init", "--config", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(stdout.String(), "Created "+path) {
		t.Fatalf("unexpected output: %q", stdout.String())
	}
	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("expected loadable config: %v", err)
	}

	cmd = newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"init", "--config", path})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when config exists")
	}
}

func TestReportLaunchErrors(t *testing.T) {
	var buf bytes.Buffer
	reportLaunchErrors(&buf, []*LaunchError{
		{App: "steam", Err: errors.New("not found")},
		{App: "discord", Err: errors.New("permission denied")},
	})
	want := "launch error: steam: not found\nlaunch error: discord: permission denied\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, false).Info("launched", "app", "code")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be hidden, got %q", buf.String())
	}

	newLogger(&buf, true).Info("launched", "app", "code")
	if !strings.Contains(buf.String(), "app=code") {
		t.Fatalf("expected info when verbose, got %q", buf.String())
	}
}

func TestDetectDarkBackgroundFromEnv(t *testing.T) {
	cases := []struct {
		value  string
		dark   bool
		usable bool
	}{
		{"", false, false},
		{"15;0", true, true},
		{"0;15", false, true},
		{"7;default", false, false},
		{"bogus", false, false},
	}
	for _, tc := range cases {
		t.Setenv("COLORFGBG", tc.value)
		dark, ok := detectDarkBackgroundFromEnv()
		if dark != tc.dark || ok != tc.usable {
			t.Fatalf("COLORFGBG=%q: got (%v, %v), want (%v, %v)", tc.value, dark, ok, tc.dark, tc.usable)
		}
	}
}

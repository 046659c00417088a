package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const defaultTitle = "What are you going to do today?"

type Config struct {
	Title  string  `yaml:"title" toml:"title"`
	Shell  string  `yaml:"shell" toml:"shell"`
	Theme  string  `yaml:"theme" toml:"theme"`
	Groups []Group `yaml:"groups" toml:"groups"`
}

type Group struct {
	Name string  `yaml:"name" toml:"name"`
	Apps AppList `yaml:"apps" toml:"apps"`
}

var errNoGroups = errors.New("config must define at least one group")

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// configCandidates lists the places searched when no path is given, in order.
func configCandidates() []string {
	paths := []string{defaultConfigName, ".launchpad.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "launchpad", "config.yml"),
			filepath.Join(dir, "launchpad", "config.toml"),
		)
	}
	return paths
}

// resolveConfigPath returns the first existing candidate. When none exists it
// returns the preferred location for a new config and an error wrapping
// os.ErrNotExist.
func resolveConfigPath() (string, error) {
	candidates := configCandidates()
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	fallback := defaultConfigName
	if len(candidates) > 2 {
		fallback = candidates[2]
	}
	return fallback, fmt.Errorf("no config found: %w", os.ErrNotExist)
}

func (c *Config) normalize() {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		c.Title = defaultTitle
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Shell = strings.TrimSpace(c.Shell)
	if c.Shell == "" {
		c.Shell = defaultShell()
	}

	for i := range c.Groups {
		g := &c.Groups[i]
		g.Name = strings.TrimSpace(g.Name)
		for j := range g.Apps {
			app := &g.Apps[j]
			app.Name = strings.TrimSpace(app.Name)
			app.Command = strings.TrimSpace(app.Command)
			if app.Name == "" {
				app.Name = defaultAppName(*app)
			}
		}
	}
}

func (c Config) validate() error {
	if len(c.Groups) == 0 {
		return errNoGroups
	}
	if c.Theme != "" && c.Theme != "auto" && c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("theme must be one of auto, light, or dark")
	}

	for i, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("group %d is missing a name", i+1)
		}
		for _, app := range g.Apps {
			if app.Command == "" {
				return fmt.Errorf("group %q has an app with an empty cmd", g.Name)
			}
		}
	}

	return nil
}

func defaultShell() string {
	if runtime.GOOS == "windows" {
		if shell := strings.TrimSpace(os.Getenv("ComSpec")); shell != "" {
			return shell
		}
		return "cmd.exe"
	}
	if shell := strings.TrimSpace(os.Getenv("SHELL")); shell != "" {
		return shell
	}
	return "/bin/sh"
}

func defaultAppName(app App) string {
	command := app.Command
	if app.Shell {
		if fields := strings.Fields(command); len(fields) > 0 {
			command = fields[0]
		}
	}
	if command == "" {
		return "app"
	}
	return filepath.Base(command)
}

func (g Group) names() []string {
	names := make([]string, 0, len(g.Apps))
	for _, app := range g.Apps {
		names = append(names, app.Name)
	}
	return names
}

func groupNames(groups []Group) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}

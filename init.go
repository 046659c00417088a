package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

const defaultConfigName = ".launchpad.yml"

var isTerminalFn = isTerminal

func runInit(path string) error {
	if path == "" {
		path = defaultConfigName
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	content := defaultConfigTemplate(strings.ToLower(filepath.Ext(path)) == ".toml")
	return os.WriteFile(path, []byte(content), 0o644)
}

func defaultConfigTemplate(asTOML bool) string {
	if asTOML {
		return fmt.Sprintf(`title = %q

[[groups]]
name = "Nothing"

[[groups]]
name = "Study"
apps = ["obsidian", "brave-browser"]

[[groups]]
name = "Docker"

  [[groups.apps]]
  name = "containers"
  cmd = "docker start $(docker ps -aq)"
  shell = true

  [[groups.apps]]
  cmd = "konsole"

  [[groups.apps]]
  cmd = "obsidian"

[[groups]]
name = "Dev"
apps = ["code", "obsidian"]

[[groups]]
name = "Play"
apps = ["discord", "steam"]
`, defaultTitle)
	}

	return fmt.Sprintf(`title: %q

groups:
  - name: Nothing

  - name: Study
    apps:
      - obsidian
      - brave-browser

  - name: Docker
    apps:
      - name: containers
        cmd: docker start $(docker ps -aq)
        shell: true
      - konsole
      - obsidian

  - name: Dev
    apps:
      - code
      - obsidian

  - name: Play
    apps:
      - discord
      - steam
`, defaultTitle)
}

func offerInit(path string) error {
	if !isTerminalFn(os.Stdin) {
		fmt.Fprintf(os.Stderr, "No config found. Run `launchpad init` to create %s.\n", path)
		return errors.New("config missing")
	}

	ok, err := promptYesNo(fmt.Sprintf("No config found. Create %s now?", path))
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("config missing")
	}

	if err := runInit(path); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Created %s. Edit it, then re-run launchpad.\n", path)
	return nil
}

func promptYesNo(question string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

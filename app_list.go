package main

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"
)

// App is one process to start when its group is picked.
type App struct {
	Name    string
	Command string
	Args    []string
	Shell   bool
}

type AppList []App

// ArgList accepts either a single string or a list of strings.
type ArgList []string

// rawApp collects the fields of one apps entry before they become an App.
type rawApp struct {
	name    string
	cmd     string
	args    ArgList
	argsSet bool
	shell   bool
}

func (a *AppList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		app, err := rawApp{cmd: value.Value}.app()
		if err != nil {
			return err
		}
		*a = AppList{app}
		return nil
	case yaml.SequenceNode:
		apps := make(AppList, 0, len(value.Content))
		for _, node := range value.Content {
			raw, err := parseAppNode(node)
			if err != nil {
				return err
			}
			app, err := raw.app()
			if err != nil {
				return err
			}
			apps = append(apps, app)
		}
		*a = apps
		return nil
	case 0:
		return nil
	default:
		return fmt.Errorf("apps must be a string or list")
	}
}

func parseAppNode(node *yaml.Node) (rawApp, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return rawApp{cmd: node.Value}, nil
	case yaml.MappingNode:
		var raw rawApp
		for i := 0; i < len(node.Content); i += 2 {
			key := node.Content[i]
			val := node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				continue
			}
			switch strings.TrimSpace(key.Value) {
			case "name":
				if val.Kind != yaml.ScalarNode {
					return rawApp{}, fmt.Errorf("app name must be a string")
				}
				raw.name = val.Value
			case "cmd":
				if val.Kind != yaml.ScalarNode {
					return rawApp{}, fmt.Errorf("app cmd must be a string")
				}
				raw.cmd = val.Value
			case "args":
				if err := val.Decode(&raw.args); err != nil {
					return rawApp{}, err
				}
				raw.argsSet = true
			case "shell":
				if err := val.Decode(&raw.shell); err != nil {
					return rawApp{}, fmt.Errorf("app shell must be true or false")
				}
			}
		}
		return raw, nil
	default:
		return rawApp{}, fmt.Errorf("app must be a string or map")
	}
}

func (a *AppList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case string:
		app, err := rawApp{cmd: v}.app()
		if err != nil {
			return err
		}
		*a = AppList{app}
		return nil
	case []any:
		apps := make(AppList, 0, len(v))
		for _, item := range v {
			raw, err := parseAppValue(item)
			if err != nil {
				return err
			}
			app, err := raw.app()
			if err != nil {
				return err
			}
			apps = append(apps, app)
		}
		*a = apps
		return nil
	case []map[string]any:
		apps := make(AppList, 0, len(v))
		for _, item := range v {
			raw, err := parseAppValue(item)
			if err != nil {
				return err
			}
			app, err := raw.app()
			if err != nil {
				return err
			}
			apps = append(apps, app)
		}
		*a = apps
		return nil
	default:
		return fmt.Errorf("apps must be a string or list")
	}
}

func parseAppValue(value any) (rawApp, error) {
	switch v := value.(type) {
	case string:
		return rawApp{cmd: v}, nil
	case map[string]any:
		var raw rawApp
		for key, val := range v {
			switch strings.TrimSpace(key) {
			case "name":
				s, ok := val.(string)
				if !ok {
					return rawApp{}, fmt.Errorf("app name must be a string")
				}
				raw.name = s
			case "cmd":
				s, ok := val.(string)
				if !ok {
					return rawApp{}, fmt.Errorf("app cmd must be a string")
				}
				raw.cmd = s
			case "args":
				if err := raw.args.UnmarshalTOML(val); err != nil {
					return rawApp{}, err
				}
				raw.argsSet = true
			case "shell":
				b, ok := val.(bool)
				if !ok {
					return rawApp{}, fmt.Errorf("app shell must be true or false")
				}
				raw.shell = b
			}
		}
		return raw, nil
	default:
		return rawApp{}, fmt.Errorf("app must be a string or table")
	}
}

// app splits a plain command line into program and arguments unless the
// entry is a shell script or already lists its args.
func (r rawApp) app() (App, error) {
	app := App{
		Name:    strings.TrimSpace(r.name),
		Command: strings.TrimSpace(r.cmd),
		Args:    []string(r.args),
		Shell:   r.shell,
	}
	if app.Shell || r.argsSet || !strings.ContainsAny(app.Command, " \t") {
		return app, nil
	}
	words, err := shlex.Split(app.Command)
	if err != nil {
		return App{}, fmt.Errorf("app cmd %q: %w", app.Command, err)
	}
	if len(words) == 0 {
		return app, nil
	}
	app.Command = words[0]
	app.Args = words[1:]
	return app, nil
}

func (l *ArgList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		*l = ArgList{value.Value}
		return nil
	case yaml.SequenceNode:
		args := make(ArgList, 0, len(value.Content))
		for _, node := range value.Content {
			if node.Kind != yaml.ScalarNode {
				return fmt.Errorf("args must be strings")
			}
			args = append(args, node.Value)
		}
		*l = args
		return nil
	case 0:
		return nil
	default:
		return fmt.Errorf("args must be a string or list")
	}
}

func (l *ArgList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case string:
		*l = ArgList{v}
		return nil
	case []any:
		args := make(ArgList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("args must be strings")
			}
			args = append(args, s)
		}
		*l = args
		return nil
	default:
		return fmt.Errorf("args must be a string or list")
	}
}

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		// Not present.
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawWindowConfig struct {
	Title       *string `yaml:"title"`
	Width       *uint32 `yaml:"width"`
	Height      *uint32 `yaml:"height"`
	X           *int32  `yaml:"x"`
	Y           *int32  `yaml:"y"`
	BorderWidth *uint32 `yaml:"border_width"`
	Undecorated *bool   `yaml:"undecorated"`
}

type RawExitConfig struct {
	Key  *string `yaml:"key"`
	Code *int    `yaml:"code"`
}

type RawLoggingConfig struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

type RawRecordConfig struct {
	Path      *string `yaml:"path"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

// RawConfig is one YAML file as written. Nil fields were not set and leave
// the value from earlier files or the defaults in place.
type RawConfig struct {
	Include IncludeList       `yaml:"include"`
	Backend *string           `yaml:"backend"`
	Display *string           `yaml:"display"`
	Window  *RawWindowConfig  `yaml:"window"`
	Exit    *RawExitConfig    `yaml:"exit"`
	Logging *RawLoggingConfig `yaml:"logging"`
	Record  *RawRecordConfig  `yaml:"record"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.Backend != nil {
		out.Backend = overlay.Backend
	}
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.Window != nil {
		var base RawWindowConfig
		if out.Window != nil {
			base = *out.Window
		}
		merged := mergeRawWindow(base, *overlay.Window)
		out.Window = &merged
	}
	if overlay.Exit != nil {
		var base RawExitConfig
		if out.Exit != nil {
			base = *out.Exit
		}
		if overlay.Exit.Key != nil {
			base.Key = overlay.Exit.Key
		}
		if overlay.Exit.Code != nil {
			base.Code = overlay.Exit.Code
		}
		out.Exit = &base
	}
	if overlay.Logging != nil {
		var base RawLoggingConfig
		if out.Logging != nil {
			base = *out.Logging
		}
		if overlay.Logging.Level != nil {
			base.Level = overlay.Logging.Level
		}
		if overlay.Logging.Format != nil {
			base.Format = overlay.Logging.Format
		}
		out.Logging = &base
	}
	if overlay.Record != nil {
		var base RawRecordConfig
		if out.Record != nil {
			base = *out.Record
		}
		if overlay.Record.Path != nil {
			base.Path = overlay.Record.Path
		}
		if overlay.Record.MaxSizeMB != nil {
			base.MaxSizeMB = overlay.Record.MaxSizeMB
		}
		if overlay.Record.MaxFiles != nil {
			base.MaxFiles = overlay.Record.MaxFiles
		}
		out.Record = &base
	}

	return out
}

func mergeRawWindow(base RawWindowConfig, overlay RawWindowConfig) RawWindowConfig {
	out := base
	if overlay.Title != nil {
		out.Title = overlay.Title
	}
	if overlay.Width != nil {
		out.Width = overlay.Width
	}
	if overlay.Height != nil {
		out.Height = overlay.Height
	}
	if overlay.X != nil {
		out.X = overlay.X
	}
	if overlay.Y != nil {
		out.Y = overlay.Y
	}
	if overlay.BorderWidth != nil {
		out.BorderWidth = overlay.BorderWidth
	}
	if overlay.Undecorated != nil {
		out.Undecorated = overlay.Undecorated
	}
	return out
}

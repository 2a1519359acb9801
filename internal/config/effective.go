package config

import (
	"fmt"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// BuildEffectiveConfig applies raw on top of DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Backend != nil {
		cfg.Backend = *raw.Backend
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}

	if w := raw.Window; w != nil {
		if w.Title != nil {
			cfg.Window.Title = *w.Title
		}
		if w.Width != nil {
			cfg.Window.Width = *w.Width
		}
		if w.Height != nil {
			cfg.Window.Height = *w.Height
		}
		if w.X != nil {
			cfg.Window.X = *w.X
		}
		if w.Y != nil {
			cfg.Window.Y = *w.Y
		}
		if w.BorderWidth != nil {
			cfg.Window.BorderWidth = *w.BorderWidth
		}
		if w.Undecorated != nil {
			cfg.Window.Undecorated = *w.Undecorated
		}
	}

	if e := raw.Exit; e != nil {
		if e.Key != nil {
			cfg.Exit.Key = *e.Key
		}
		if e.Code != nil {
			cfg.Exit.Code = *e.Code
		}
	}

	if l := raw.Logging; l != nil {
		if l.Level != nil {
			cfg.Logging.Level = *l.Level
		}
		if l.Format != nil {
			cfg.Logging.Format = *l.Format
		}
	}

	if r := raw.Record; r != nil {
		cfg.Record.Path = derefString(r.Path, cfg.Record.Path)
		cfg.Record.MaxSizeMB = derefInt(r.MaxSizeMB, cfg.Record.MaxSizeMB)
		cfg.Record.MaxFiles = derefInt(r.MaxFiles, cfg.Record.MaxFiles)
	}

	return cfg
}

func derefInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func derefString(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

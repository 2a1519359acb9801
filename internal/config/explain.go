package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths:
//
//	backend
//	display
//	window.title
//	window.width
//	window.height
//	window.x
//	window.y
//	window.border_width
//	window.undecorated
//	exit.key
//	exit.code
//	logging.level
//	logging.format
//	record.path
//	record.max_size_mb
//	record.max_files
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("unknown path: %s", path)
	}
	if len(parts) == 1 {
		switch parts[0] {
		case "backend":
			return cfg.Backend, nil
		case "display":
			return cfg.Display, nil
		}
		return nil, fmt.Errorf("unknown path: %s", path)
	}

	switch parts[0] {
	case "window":
		switch parts[1] {
		case "title":
			return cfg.Window.Title, nil
		case "width":
			return cfg.Window.Width, nil
		case "height":
			return cfg.Window.Height, nil
		case "x":
			return cfg.Window.X, nil
		case "y":
			return cfg.Window.Y, nil
		case "border_width":
			return cfg.Window.BorderWidth, nil
		case "undecorated":
			return cfg.Window.Undecorated, nil
		}
	case "exit":
		switch parts[1] {
		case "key":
			return cfg.Exit.Key, nil
		case "code":
			return cfg.Exit.Code, nil
		}
	case "logging":
		switch parts[1] {
		case "level":
			return cfg.Logging.Level, nil
		case "format":
			return cfg.Logging.Format, nil
		}
	case "record":
		switch parts[1] {
		case "path":
			return cfg.Record.Path, nil
		case "max_size_mb":
			return cfg.Record.MaxSizeMB, nil
		case "max_files":
			return cfg.Record.MaxFiles, nil
		}
	}
	return nil, fmt.Errorf("unknown path: %s", path)
}

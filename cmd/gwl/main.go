package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/gwl/internal/config"
)

type command struct {
	name    string
	summary string
	run     func(args []string) int
}

var commands = []command{
	{"run", "Open a window and print its events", runWindow},
	{"adopt", "Attach to an existing X11 window by title", runAdopt},
	{"info", "Show the detected window system and monitors", runInfo},
	{"config", "Validate, print or explain the configuration", runConfig},
}

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		return
	}

	name := os.Args[1]
	for _, cmd := range commands {
		if cmd.name == name {
			os.Exit(cmd.run(os.Args[2:]))
		}
	}
	switch name {
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprint(w, "Usage: gwl <command> [options]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.name, cmd.summary)
	}
	tw.Flush()
	fmt.Fprint(w, "\nRun 'gwl <command> --help' for command-specific options.\n")
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

// parseFlags parses args into fs and maps the outcome to an exit status:
// -1 to continue, 0 after --help, 2 on a usage error.
func parseFlags(fs *flag.FlagSet, args []string) int {
	err := fs.Parse(args)
	switch {
	case err == nil:
		return -1
	case errors.Is(err, flag.ErrHelp):
		return 0
	default:
		return 2
	}
}

func pathFlag(fs *flag.FlagSet) *string {
	return fs.String("path", "", "Config file path (default: ~/.config/gwl/config.yaml)")
}

func runConfig(args []string) int {
	if len(args) == 0 {
		printConfigUsage()
		return 2
	}

	switch args[0] {
	case "validate":
		return configValidate(args[1:])
	case "print":
		return configPrint(args[1:])
	case "explain":
		return configExplain(args[1:])
	case "help", "-h", "--help":
		printConfigUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func printConfigUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  gwl config validate [--path PATH]")
	fmt.Fprintln(os.Stderr, "  gwl config print [--path PATH] [--defaults]")
	fmt.Fprintln(os.Stderr, "  gwl config explain [--path PATH] <yaml.path>")
}

func configValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := pathFlag(fs)
	if rc := parseFlags(fs, args); rc >= 0 {
		return rc
	}

	if _, err := loadConfig(*path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("config: ok")
	return 0
}

func configPrint(args []string) int {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := pathFlag(fs)
	defaults := fs.Bool("defaults", false, "Print built-in defaults without reading any file")
	if rc := parseFlags(fs, args); rc >= 0 {
		return rc
	}

	cfg := config.DefaultConfig()
	if !*defaults {
		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		for _, f := range res.Files {
			fmt.Printf("# loaded: %s\n", f)
		}
		cfg = res.Config
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func configExplain(args []string) int {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := pathFlag(fs)
	if rc := parseFlags(fs, args); rc >= 0 {
		return rc
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "explain requires exactly one <yaml.path>")
		return 2
	}
	key := fs.Arg(0)

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	value, src, err := config.Explain(res, key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	out, err := yaml.Marshal(value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("path: %s\nsource: %s\nvalue: %s", key, formatSource(src), out)
	return 0
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		switch {
		case src.File == "":
			return "file"
		case src.Line > 0:
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		default:
			return "file:" + src.File
		}
	case config.SourceDefault:
		if src.Name == "" {
			return "default"
		}
		return "default:" + src.Name
	}
	return string(src.Kind)
}

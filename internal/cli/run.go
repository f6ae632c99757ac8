package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/prodlist/internal/catalog"
)

// globalOptions holds the parsed global flags.
type globalOptions struct {
	cwd        string
	configPath string
	overrides  catalog.Config
	help       bool
}

// Run is the main entry point. Returns exit code.
//
// sigCh may be nil. A signal on it cancels the context handed to commands;
// the interactive browser stops at its next prompt.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	o := NewIO(out, errOut)

	var (
		opts globalOptions
		cfg  catalog.Config
	)

	log := newLogger(errOut)
	globals := globalFlagSet(&opts)
	commands := allCommands(&cfg, log, stdin)

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.Parse(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(NewIO(errOut, errOut), globals, commands)

		return 1
	}

	rest := globals.Args()

	if opts.help || len(rest) == 0 {
		printUsage(o, globals, commands)

		return 0
	}

	cmd := findCommand(commands, rest[0])
	if cmd == nil {
		o.ErrPrintln("error: unknown command:", rest[0])
		o.ErrPrintln()
		printUsage(NewIO(errOut, errOut), globals, commands)

		return 1
	}

	if hasHelpFlag(rest[1:]) {
		cmd.PrintHelp(o)

		return 0
	}

	cfg, err = catalog.LoadConfig(catalog.LoadConfigInput{
		WorkDirOverride: opts.cwd,
		ConfigPath:      opts.configPath,
		Overrides:       opts.overrides,
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(NewIO(errOut, errOut), globals, commands)

		return 1
	}

	// LoadConfig validated the level.
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	return cmd.Run(ctx, o, rest[1:])
}

func globalFlagSet(opts *globalOptions) *flag.FlagSet {
	fs := flag.NewFlagSet("prodlist", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.SetInterspersed(false)

	fs.StringVarP(&opts.cwd, "cwd", "C", "", "Run as if started in `dir`")
	fs.StringVarP(&opts.configPath, "config", "c", "", "Use specified config `file`")
	fs.StringVar(&opts.overrides.Fixtures, "fixtures", "", "Load fixtures from `file` instead of the built-in set")
	fs.StringVar(&opts.overrides.Color, "color", "", "Color owner names: never|always")
	fs.StringVar(&opts.overrides.LogLevel, "log-level", "", "Log `level`: debug|info|warn|error")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help")

	return fs
}

func allCommands(cfg *catalog.Config, log *logrus.Logger, stdin io.Reader) []*Command {
	return []*Command{
		LsCmd(cfg, log),
		RenderCmd(cfg, log),
		BrowseCmd(cfg, log, stdin),
		CheckCmd(cfg, log),
		PrintConfigCmd(cfg),
	}
}

func findCommand(commands []*Command, name string) *Command {
	for _, c := range commands {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

const helpFlag = "--help"

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}

		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printUsage(o *IO, globals *flag.FlagSet, commands []*Command) {
	o.Println("prodlist - product listing filtered by owner and name")
	o.Println()
	o.Println("Usage: prodlist [global flags] <command> [args]")
	o.Println()
	o.Println("Commands:")

	for _, c := range commands {
		o.Println(c.HelpLine())
	}

	o.Println()
	o.Println("Global flags:")
	o.Printf("%s", globals.FlagUsages())
}

// errNoArgs is returned by commands that take flags only.
var errNoArgs = errors.New("unexpected arguments")

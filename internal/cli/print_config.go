package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/prodlist/internal/catalog"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *catalog.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, cfg)
		},
	}
}

func execPrintConfig(io *IO, cfg *catalog.Config) error {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)

	if cfg.FixturesAbs != "" {
		io.Println("fixtures=" + cfg.FixturesAbs)
	} else {
		io.Println("fixtures=(built-in)")
	}

	io.Println("color=" + cfg.Color)
	io.Println("log_level=" + cfg.LogLevel)

	if cfg.HistoryAbs != "" {
		io.Println("history=" + cfg.HistoryAbs)
	} else {
		io.Println("history=(disabled)")
	}

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" && cfg.Sources.DotEnv == "" {
		io.Println("(defaults only)")

		return nil
	}

	if cfg.Sources.Global != "" {
		io.Println("global_config=" + cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		io.Println("project_config=" + cfg.Sources.Project)
	}

	if cfg.Sources.DotEnv != "" {
		io.Println("dotenv=" + cfg.Sources.DotEnv)
	}

	return nil
}

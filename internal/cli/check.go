package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/prodlist/internal/catalog"
	"github.com/calvinalkan/prodlist/internal/page"
)

// CheckCmd returns the check command.
func CheckCmd(cfg *catalog.Config, log *logrus.Logger) *Command {
	return &Command{
		Flags: flag.NewFlagSet("check", flag.ContinueOnError),
		Usage: "check",
		Short: "Validate fixtures",
		Long: `Load the configured fixtures and check referential integrity.

Fails listing every duplicate id, unknown category and unknown owner. Users
with a sex other than "m" or "f" are reported as warnings.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execCheck(io, cfg, log, args)
		},
	}
}

func execCheck(io *IO, cfg *catalog.Config, log *logrus.Logger, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", errNoArgs, strings.Join(args, " "))
	}

	c, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	for _, u := range c.Users() {
		if page.StyleFor(u.Sex) == page.StyleNone {
			io.Warn(
				fmt.Sprintf("user %d (%s): unknown sex %q", u.ID, u.Name, u.Sex),
				`use "m" or "f" to style the owner cell`,
			)
		}
	}

	source := cfg.FixturesAbs
	if source == "" {
		source = "built-in"
	}

	io.Printf("ok: %d users, %d categories, %d products (%s)\n",
		len(c.Users()), len(c.Categories()), len(c.Products()), source)

	return nil
}

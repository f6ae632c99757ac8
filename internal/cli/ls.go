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

// LsCmd returns the ls command.
func LsCmd(cfg *catalog.Config, log *logrus.Logger) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	addFilterFlags(fs)

	return &Command{
		Flags: fs,
		Usage: "ls [flags]",
		Short: "List products",
		Long: `List products with their category and owner, in fixture order.

--owner keeps products whose category owner has exactly that name ("All" for
every owner). --search keeps products whose name contains the text, ignoring
case. Both filters must match.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execLs(io, cfg, log, fs, args)
		},
	}
}

// addFilterFlags registers the owner and search flags shared by ls and render.
func addFilterFlags(fs *flag.FlagSet) {
	fs.StringP("owner", "u", catalog.AllOwners, "Show only products owned by `name`")
	fs.StringP("search", "s", "", "Show only products whose name contains `text`")
}

func filterFlags(fs *flag.FlagSet) (string, string) {
	owner, _ := fs.GetString("owner")
	search, _ := fs.GetString("search")

	return owner, search
}

func execLs(io *IO, cfg *catalog.Config, log *logrus.Logger, fs *flag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", errNoArgs, strings.Join(args, " "))
	}

	c, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	owner, search := filterFlags(fs)
	p := newPage(c, owner, search, log)

	var out strings.Builder

	err = page.RenderText(&out, p.View(), page.TextOptions{Color: cfg.ColorEnabled()})
	if err != nil {
		return err
	}

	io.Printf("%s", out.String())

	return nil
}

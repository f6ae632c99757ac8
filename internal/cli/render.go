package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/prodlist/internal/catalog"
	"github.com/calvinalkan/prodlist/internal/page"
)

// RenderCmd returns the render command.
func RenderCmd(cfg *catalog.Config, log *logrus.Logger) *Command {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	addFilterFlags(fs)
	fs.StringP("out", "o", "", "Write the document to `file` instead of stdout")

	return &Command{
		Flags: fs,
		Usage: "render [flags]",
		Short: "Render the listing as an HTML document",
		Long: `Render the product listing page as a standalone HTML document.

The owner tabs, search field and results reflect --owner and --search. Every
control and table cell carries a data-cy attribute for UI tests. With --out the
file is replaced atomically.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execRender(io, cfg, log, fs, args)
		},
	}
}

func execRender(io *IO, cfg *catalog.Config, log *logrus.Logger, fs *flag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", errNoArgs, strings.Join(args, " "))
	}

	c, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	owner, search := filterFlags(fs)
	p := newPage(c, owner, search, log)

	outPath, _ := fs.GetString("out")
	if outPath == "" {
		var doc strings.Builder

		err = page.RenderHTML(&doc, p.View())
		if err != nil {
			return err
		}

		io.Printf("%s", doc.String())

		return nil
	}

	path, err := writeHTML(cfg, p, outPath)
	if err != nil {
		return err
	}

	io.Println("wrote", path)

	return nil
}

// writeHTML renders p and atomically replaces path with the document.
// Relative paths resolve against the effective working directory.
func writeHTML(cfg *catalog.Config, p *page.Page, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.EffectiveCwd, path)
	}

	var doc bytes.Buffer

	err := page.RenderHTML(&doc, p.View())
	if err != nil {
		return "", err
	}

	err = atomic.WriteFile(path, &doc)
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/prodlist/internal/catalog"
	"github.com/calvinalkan/prodlist/internal/page"
)

const browsePrompt = "prodlist> "

// BrowseCmd returns the browse command.
//
// When stdin is the process's standard input the session uses liner for line
// editing, completion and history. Any other reader is consumed line by line.
func BrowseCmd(cfg *catalog.Config, log *logrus.Logger, stdin io.Reader) *Command {
	return &Command{
		Flags: flag.NewFlagSet("browse", flag.ContinueOnError),
		Usage: "browse",
		Short: "Filter products interactively",
		Long: `Start an interactive session over the product listing.

Each command is one interaction with the listing; the whole view is redrawn
after every change. Type 'help' inside the session for the command list.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errNoArgs, strings.Join(args, " "))
			}

			return execBrowse(ctx, o, cfg, log, stdin)
		},
	}
}

// prompter reads one line of input. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// scanPrompter reads lines from a non-terminal reader. Prompts are not echoed.
type scanPrompter struct {
	scanner *bufio.Scanner
}

func (s *scanPrompter) Prompt(string) (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return s.scanner.Text(), nil
}

func isProcessStdin(r io.Reader) bool {
	f, ok := r.(*os.File)

	return r == nil || (ok && f == os.Stdin)
}

func execBrowse(ctx context.Context, o *IO, cfg *catalog.Config, log *logrus.Logger, stdin io.Reader) error {
	c, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	s := &session{
		page:    page.New(c),
		catalog: c,
		io:      o,
		cfg:     cfg,
		log:     log,
	}

	if !isProcessStdin(stdin) {
		return s.loop(ctx, &scanPrompter{scanner: bufio.NewScanner(stdin)})
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.complete)

	s.readHistory(line)

	err = s.loop(ctx, line)

	s.saveHistory(line)

	return err
}

// session is one interactive browse run. It owns the page and is driven by
// a single loop; no state is shared.
type session struct {
	page    *page.Page
	catalog *catalog.Catalog
	io      *IO
	cfg     *catalog.Config
	log     *logrus.Logger
	history func(string)
}

func (s *session) loop(ctx context.Context, in prompter) error {
	s.io.Printf("prodlist - %d products, %d owners. Type 'help' for commands.\n\n",
		len(s.catalog.Products()), len(s.catalog.Users()))
	s.render()

	for ctx.Err() == nil {
		line, err := in.Prompt(browsePrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if s.history != nil {
			s.history(line)
		}

		if s.handle(line) {
			break
		}
	}

	s.io.Println("Bye!")

	return nil
}

// handle runs one command line. Returns true when the session should end.
func (s *session) handle(line string) bool {
	name, rest := splitCommand(line)

	switch strings.ToLower(name) {
	case "exit", "quit", "q":
		return true

	case "help", "?":
		s.printHelp()

	case "show", "ls":
		s.render()

	case "all":
		s.dispatch(page.SelectAllOwners{})

	case "owner":
		owner := strings.TrimSpace(rest)
		if owner == "" {
			s.io.Println("Usage: owner <name>   (one of:", strings.Join(s.ownerNames(), ", ")+")")

			return false
		}

		s.dispatch(page.SelectOwner{Name: owner})

	case "search":
		s.dispatch(page.EditQuery{Text: rest})

	case "clear":
		if s.page.State().Query == "" {
			s.io.Println("Nothing to clear: search is empty.")

			return false
		}

		s.dispatch(page.ClearQuery{})

	case "reset":
		s.dispatch(page.ResetAll{})

	case "html":
		s.writeHTML(strings.TrimSpace(rest))

	default:
		s.io.Printf("Unknown command: %s (type 'help' for commands)\n", name)
	}

	return false
}

// splitCommand splits a line into the command word and the raw remainder.
// The remainder keeps inner and trailing spaces, so "search  a " searches
// for " a ".
func splitCommand(line string) (string, string) {
	line = strings.TrimLeft(line, " \t")
	name, rest, _ := strings.Cut(line, " ")

	return name, rest
}

func (s *session) dispatch(ev page.Event) {
	dispatch(s.page, ev, s.log)
	s.render()
}

func (s *session) render() {
	var out strings.Builder

	err := page.RenderText(&out, s.page.View(), page.TextOptions{
		Controls: true,
		Color:    s.cfg.ColorEnabled(),
	})
	if err != nil {
		s.io.Printf("Error: %v\n", err)

		return
	}

	s.io.Printf("%s\n", out.String())
}

func (s *session) writeHTML(path string) {
	if path == "" {
		s.io.Println("Usage: html <file>")

		return
	}

	written, err := writeHTML(s.cfg, s.page, path)
	if err != nil {
		s.io.Printf("Error: %v\n", err)

		return
	}

	s.io.Println("wrote", written)
}

func (s *session) ownerNames() []string {
	users := s.catalog.Users()
	names := make([]string, 0, len(users))

	for _, u := range users {
		names = append(names, u.Name)
	}

	return names
}

var browseCommands = []string{
	"all", "owner", "search", "clear", "reset",
	"show", "ls", "html", "help", "exit", "quit", "q",
}

// complete provides tab completion for commands and owner names.
func (s *session) complete(line string) []string {
	var completions []string

	if rest, ok := strings.CutPrefix(line, "owner "); ok {
		for _, name := range s.ownerNames() {
			if strings.HasPrefix(name, rest) {
				completions = append(completions, "owner "+name)
			}
		}

		return completions
	}

	lower := strings.ToLower(line)
	for _, cmd := range browseCommands {
		if strings.HasPrefix(cmd, lower) {
			completions = append(completions, cmd)
		}
	}

	return completions
}

func (s *session) printHelp() {
	s.io.Println("Commands:")
	s.io.Println("  all                 Show products of every owner")
	s.io.Println("  owner <name>        Show only products owned by <name>")
	s.io.Println("  search <text>       Filter by product name (case-insensitive); 'search' alone empties it")
	s.io.Println("  clear               Clear the search text")
	s.io.Println("  reset               Reset all filters")
	s.io.Println("  show                Redraw the listing")
	s.io.Println("  html <file>         Write the current view as an HTML document")
	s.io.Println("  help                Show this help")
	s.io.Println("  exit / quit / q     Exit")
}

func (s *session) readHistory(line *liner.State) {
	s.history = func(entry string) { line.AppendHistory(entry) }

	if s.cfg.HistoryAbs == "" {
		return
	}

	f, err := os.Open(s.cfg.HistoryAbs)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).Warn("cannot read history")
		}

		return
	}
	defer f.Close()

	n, err := line.ReadHistory(f)
	if err != nil {
		s.log.WithError(err).Warn("cannot read history")
	}

	s.log.WithField("entries", n).Debug("history loaded")
}

// saveHistory replaces the history file atomically.
func (s *session) saveHistory(line *liner.State) {
	if s.cfg.HistoryAbs == "" {
		return
	}

	var buf bytes.Buffer

	_, err := line.WriteHistory(&buf)
	if err != nil {
		s.log.WithError(err).Warn("cannot save history")

		return
	}

	err = atomic.WriteFile(s.cfg.HistoryAbs, &buf)
	if err != nil {
		s.log.WithError(err).Warn("cannot save history")

		return
	}

	s.log.WithField("path", s.cfg.HistoryAbs).Debug("history saved")
}

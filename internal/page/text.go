package page

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// NoResultsMessage replaces the table when no product matches.
const NoResultsMessage = "No products matching selected criteria"

// Column headers, shared by the text and HTML renderers.
var columnHeaders = [...]string{"ID", "Product", "Category", "User"}

// columnGap separates table columns in text output.
const columnGap = "  "

// TextOptions controls terminal rendering.
type TextOptions struct {
	// Controls renders the owner tabs and search field above the table.
	Controls bool

	// Color wraps owner cells in ANSI colors according to their style.
	Color bool
}

// RenderText writes v as a plain-text table.
func RenderText(w io.Writer, v View, opts TextOptions) error {
	var b strings.Builder

	if opts.Controls {
		writeControls(&b, v)
	}

	if v.Empty() {
		b.WriteString(NoResultsMessage)
		b.WriteString("\n")
	} else {
		writeTable(&b, v.Rows, opts.Color)
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	return nil
}

func writeControls(b *strings.Builder, v View) {
	b.WriteString("Owners:")

	for _, tab := range v.Tabs {
		b.WriteString(" ")

		if tab.Active {
			b.WriteString("[" + tab.Label + "]")
		} else {
			b.WriteString(tab.Label)
		}
	}

	b.WriteString("\nSearch: ")

	if v.Clearable {
		b.WriteString(strconv.Quote(v.Query))
		b.WriteString(" (clear)")
	} else {
		b.WriteString("(none)")
	}

	b.WriteString("\n\n")
}

func writeTable(b *strings.Builder, rows []Row, color bool) {
	cells := make([][len(columnHeaders)]string, 0, len(rows)+1)
	cells = append(cells, columnHeaders)

	for _, r := range rows {
		cells = append(cells, [len(columnHeaders)]string{strconv.Itoa(r.ID), r.Name, r.Category, r.Owner})
	}

	var widths [len(columnHeaders)]int

	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	last := len(columnHeaders) - 1

	for n, line := range cells {
		for i, cell := range line[:last] {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			b.WriteString(columnGap)
		}

		owner := line[last]

		// Row 0 is the header.
		if color && n > 0 {
			if code := rows[n-1].Style.ansi(); code != "" {
				owner = code + owner + ansiReset
			}
		}

		b.WriteString(owner)
		b.WriteString("\n")
	}
}

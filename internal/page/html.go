package page

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
)

// DocumentTitle is the heading of the HTML document.
const DocumentTitle = "Product Categories"

//go:embed page.html.tmpl
var pageTemplateText string

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateText))

// sortIcons are decorative: clicking them does not reorder rows.
var sortIcons = [len(columnHeaders)]string{"fa-sort", "fa-sort-down", "fa-sort-up", "fa-sort"}

type htmlColumn struct {
	Header   string
	SortIcon string
}

type htmlDocument struct {
	Title     string
	NoResults string
	Columns   []htmlColumn
	View      View
}

// RenderHTML writes v as a standalone HTML document. Every control and cell
// carries a data-cy attribute for UI tests.
func RenderHTML(w io.Writer, v View) error {
	columns := make([]htmlColumn, 0, len(columnHeaders))
	for i, h := range columnHeaders {
		columns = append(columns, htmlColumn{Header: h, SortIcon: sortIcons[i]})
	}

	doc := htmlDocument{
		Title:     DocumentTitle,
		NoResults: NoResultsMessage,
		Columns:   columns,
		View:      v,
	}

	err := pageTemplate.Execute(w, doc)
	if err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}

	return nil
}

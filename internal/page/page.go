package page

import (
	"github.com/calvinalkan/prodlist/internal/catalog"
)

// Page holds a catalog and the filter state applied to it.
//
// A Page is driven from a single goroutine: each [Page.Dispatch] runs to
// completion before the next event is read.
type Page struct {
	catalog *catalog.Catalog
	state   State
}

// New returns a page over c in [InitialState].
func New(c *catalog.Catalog) *Page {
	return &Page{catalog: c, state: InitialState()}
}

// State returns the current filter state.
func (p *Page) State() State {
	return p.state
}

// Dispatch applies ev and returns the new state.
func (p *Page) Dispatch(ev Event) State {
	p.state = Reduce(p.state, ev)

	return p.state
}

// Visible returns the products matching the current state.
// It rescans the catalog on every call.
func (p *Page) Visible() []catalog.EnrichedProduct {
	return p.catalog.Filter(p.state.Criteria())
}

// Tab is one owner filter control.
type Tab struct {
	Label  string
	All    bool // the "All" tab rather than a specific owner
	Active bool
}

// Row is one product line of the results table.
type Row struct {
	ID       int
	Name     string
	Category string // "<icon> - <title>"
	Owner    string
	Style    OwnerStyle
}

// View is everything a renderer needs to draw the page once.
type View struct {
	Tabs       []Tab
	Query      string
	Clearable  bool     // clear control shown; only while Query is non-empty
	Categories []string // inert category buttons, by title
	Rows       []Row
}

// Empty reports whether the "no results" notice replaces the table.
func (v View) Empty() bool {
	return len(v.Rows) == 0
}

// View builds a snapshot of the page for rendering.
func (p *Page) View() View {
	users := p.catalog.Users()

	tabs := make([]Tab, 0, len(users)+1)
	tabs = append(tabs, Tab{Label: catalog.AllOwners, All: true, Active: p.state.Owner == catalog.AllOwners})

	for _, u := range users {
		tabs = append(tabs, Tab{Label: u.Name, Active: p.state.Owner == u.Name})
	}

	categories := p.catalog.Categories()
	titles := make([]string, 0, len(categories))

	for _, c := range categories {
		titles = append(titles, c.Title)
	}

	visible := p.Visible()
	rows := make([]Row, 0, len(visible))

	for _, prod := range visible {
		rows = append(rows, Row{
			ID:       prod.ID,
			Name:     prod.Name,
			Category: prod.Category.Label(),
			Owner:    prod.User.Name,
			Style:    StyleFor(prod.User.Sex),
		})
	}

	return View{
		Tabs:       tabs,
		Query:      p.state.Query,
		Clearable:  p.state.Query != "",
		Categories: titles,
		Rows:       rows,
	}
}

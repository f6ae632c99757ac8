// Package page is the interactive product listing: it owns the filter state,
// applies user events to it and renders the filtered catalog as a terminal
// table or an HTML document.
package page

import (
	"fmt"

	"github.com/calvinalkan/prodlist/internal/catalog"
)

// State is the transient filter state of one listing session.
type State struct {
	Owner string // selected owner name or [catalog.AllOwners]
	Query string // raw search text, empty for none
}

// InitialState is the state a session starts in and [ResetAll] returns to.
func InitialState() State {
	return State{Owner: catalog.AllOwners}
}

// Criteria converts the state into catalog filter criteria.
func (s State) Criteria() catalog.Criteria {
	return catalog.Criteria{Owner: s.Owner, Query: s.Query}
}

// Event is a user interaction that changes [State].
// The set is closed: only the types in this package implement it.
type Event interface {
	fmt.Stringer

	event()
}

// SelectAllOwners is a click on the "All" owner tab.
type SelectAllOwners struct{}

// SelectOwner is a click on one owner's tab.
type SelectOwner struct {
	Name string
}

// EditQuery is an edit of the search field. Text is the complete new value.
type EditQuery struct {
	Text string
}

// ClearQuery is a click on the search field's clear control.
type ClearQuery struct{}

// ResetAll is a click on "Reset all filters".
type ResetAll struct{}

func (SelectAllOwners) event() {}
func (SelectOwner) event() {}
func (EditQuery) event() {}
func (ClearQuery) event() {}
func (ResetAll) event() {}

func (SelectAllOwners) String() string { return "select-all-owners" }

func (e SelectOwner) String() string { return fmt.Sprintf("select-owner(%q)", e.Name) }

func (e EditQuery) String() string { return fmt.Sprintf("edit-query(%q)", e.Text) }

func (ClearQuery) String() string { return "clear-query" }

func (ResetAll) String() string { return "reset-all" }

// Reduce returns the state after ev. It is pure; s is not modified.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case SelectAllOwners:
		s.Owner = catalog.AllOwners
	case SelectOwner:
		s.Owner = e.Name
	case EditQuery:
		s.Query = e.Text
	case ClearQuery:
		s.Query = ""
	case ResetAll:
		s = InitialState()
	}

	return s
}

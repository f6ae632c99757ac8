package page

import "github.com/calvinalkan/prodlist/internal/catalog"

// OwnerStyle is the visual state of an owner cell.
type OwnerStyle int

// Owner cell styles.
const (
	StyleNone OwnerStyle = iota
	StyleMale
	StyleFemale
)

// StyleFor maps a sex to its owner cell style. Unknown values get [StyleNone].
func StyleFor(sex catalog.Sex) OwnerStyle {
	switch sex {
	case catalog.SexMale:
		return StyleMale
	case catalog.SexFemale:
		return StyleFemale
	default:
		return StyleNone
	}
}

// Class is the CSS class used in the HTML document, empty for [StyleNone].
func (s OwnerStyle) Class() string {
	switch s {
	case StyleMale:
		return "has-text-link"
	case StyleFemale:
		return "has-text-danger"
	case StyleNone:
		return ""
	}

	return ""
}

// ANSI color codes for terminal output.
const (
	ansiReset = "\033[0m"
	ansiBlue  = "\033[34m"
	ansiRed   = "\033[31m"
)

func (s OwnerStyle) ansi() string {
	switch s {
	case StyleMale:
		return ansiBlue
	case StyleFemale:
		return ansiRed
	case StyleNone:
		return ""
	}

	return ""
}

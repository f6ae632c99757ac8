package catalog

import "strings"

// AllOwners is the owner filter value meaning "no owner restriction".
const AllOwners = "All"

// Criteria selects products by owner name and a search text.
type Criteria struct {
	// Owner must equal the resolved owner's name exactly, unless it is
	// [AllOwners].
	Owner string

	// Query must be a case-insensitive substring of the product name, unless
	// it is empty.
	Query string
}

// DefaultCriteria matches every product.
func DefaultCriteria() Criteria {
	return Criteria{Owner: AllOwners}
}

// IsDefault reports whether crit matches every product.
func (crit Criteria) IsDefault() bool {
	return crit.Owner == AllOwners && crit.Query == ""
}

// Filter returns the products matching both the owner and the text predicate,
// in input order. The input is not modified and the result is never nil.
//
// Nothing is cached: each call rescans products.
func Filter(products []EnrichedProduct, crit Criteria) []EnrichedProduct {
	out := make([]EnrichedProduct, 0, len(products))

	query := strings.ToLower(crit.Query)

	for _, p := range products {
		if !matchesOwner(p, crit.Owner) {
			continue
		}

		if !matchesQuery(p, query) {
			continue
		}

		out = append(out, p)
	}

	return out
}

func matchesOwner(p EnrichedProduct, owner string) bool {
	if owner == AllOwners {
		return true
	}

	return p.User.Name == owner
}

// matchesQuery expects query already lower-cased.
func matchesQuery(p EnrichedProduct, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), query)
}

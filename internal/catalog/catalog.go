// Package catalog holds the product listing data model: the fixture tables,
// their denormalized join and the owner/text filter applied on every render.
package catalog

import (
	"fmt"
	"slices"
)

// Sex is the closed set of user sexes found in fixtures.
//
// Values outside [SexMale] and [SexFemale] are kept as-is; they only affect
// styling, which falls back to none.
type Sex string

// Sex values as they appear in fixture data.
const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// User owns categories.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sex  Sex    `json:"sex"`
}

// Category groups products and belongs to exactly one [User].
type Category struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID int    `json:"ownerId"`
}

// Label is the category cell text: "<icon> - <title>".
func (c Category) Label() string {
	return c.Icon + " - " + c.Title
}

// Product belongs to exactly one [Category].
type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
}

// EnrichedProduct is a [Product] with its category and that category's owner
// resolved.
type EnrichedProduct struct {
	Product

	Category Category
	User     User
}

// Catalog is the denormalized product list together with the fixture tables
// it was built from. It is built once by [New] and never mutated.
type Catalog struct {
	users      []User
	categories []Category
	products   []EnrichedProduct
}

// New validates fixtures and builds the catalog.
//
// Referential integrity is enforced up front: a product pointing at a missing
// category or a category pointing at a missing owner rejects the whole set.
func New(fx Fixtures) (*Catalog, error) {
	products, err := Denormalize(fx)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		users:      slices.Clone(fx.Users),
		categories: slices.Clone(fx.Categories),
		products:   products,
	}, nil
}

// Users returns the users in fixture order.
func (c *Catalog) Users() []User {
	return slices.Clone(c.users)
}

// Categories returns the categories in fixture order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Products returns every enriched product in fixture order.
func (c *Catalog) Products() []EnrichedProduct {
	return slices.Clone(c.products)
}

// HasOwner reports whether some user is called name.
func (c *Catalog) HasOwner(name string) bool {
	return slices.ContainsFunc(c.users, func(u User) bool { return u.Name == name })
}

// Filter applies crit to the catalog's products. See [Filter].
func (c *Catalog) Filter(crit Criteria) []EnrichedProduct {
	return Filter(c.products, crit)
}

// Denormalize joins every product with its category and the category's owner.
// The result has one entry per product, in input order.
//
// Lookups take the first record with a matching id. Fixtures are validated
// first, so a dangling reference is an error rather than an empty field.
func Denormalize(fx Fixtures) ([]EnrichedProduct, error) {
	err := Validate(fx)
	if err != nil {
		return nil, err
	}

	categories := make(map[int]Category, len(fx.Categories))
	for _, cat := range fx.Categories {
		if _, seen := categories[cat.ID]; !seen {
			categories[cat.ID] = cat
		}
	}

	users := make(map[int]User, len(fx.Users))
	for _, u := range fx.Users {
		if _, seen := users[u.ID]; !seen {
			users[u.ID] = u
		}
	}

	out := make([]EnrichedProduct, 0, len(fx.Products))

	for _, p := range fx.Products {
		cat, ok := categories[p.CategoryID]
		if !ok {
			// Validate guarantees both lookups succeed.
			return nil, fmt.Errorf("product %d: %w: %d", p.ID, ErrUnknownCategory, p.CategoryID)
		}

		owner, ok := users[cat.OwnerID]
		if !ok {
			return nil, fmt.Errorf("category %d: %w: %d", cat.ID, ErrUnknownOwner, cat.OwnerID)
		}

		out = append(out, EnrichedProduct{Product: p, Category: cat, User: owner})
	}

	return out, nil
}

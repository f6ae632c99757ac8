package catalog

import (
	"errors"
	"fmt"
)

// Validate checks the fixture tables for referential integrity.
//
// It reports duplicate ids within a table, products whose categoryId has no
// category and categories whose ownerId has no user. Every violation is
// collected; the returned error wraps [ErrFixturesInvalid] plus the specific
// sentinel of each violation.
func Validate(fx Fixtures) error {
	var errs []error

	userIDs := make(map[int]bool, len(fx.Users))

	for _, u := range fx.Users {
		if userIDs[u.ID] {
			errs = append(errs, fmt.Errorf("user %d: %w", u.ID, ErrDuplicateID))
		}

		userIDs[u.ID] = true
	}

	categoryIDs := make(map[int]bool, len(fx.Categories))

	for _, cat := range fx.Categories {
		if categoryIDs[cat.ID] {
			errs = append(errs, fmt.Errorf("category %d: %w", cat.ID, ErrDuplicateID))
		}

		categoryIDs[cat.ID] = true

		if !userIDs[cat.OwnerID] {
			errs = append(errs, fmt.Errorf("category %d: %w: %d", cat.ID, ErrUnknownOwner, cat.OwnerID))
		}
	}

	productIDs := make(map[int]bool, len(fx.Products))

	for _, p := range fx.Products {
		if productIDs[p.ID] {
			errs = append(errs, fmt.Errorf("product %d: %w", p.ID, ErrDuplicateID))
		}

		productIDs[p.ID] = true

		if !categoryIDs[p.CategoryID] {
			errs = append(errs, fmt.Errorf("product %d: %w: %d", p.ID, ErrUnknownCategory, p.CategoryID))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrFixturesInvalid, errors.Join(errs...))
}

package catalog_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/prodlist/internal/catalog"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	fx, err := catalog.DefaultFixtures()
	require.NoError(t, err)

	c, err := catalog.New(fx)
	require.NoError(t, err)

	return c
}

func productNames(products []catalog.EnrichedProduct) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	return names
}

func productIDs(products []catalog.EnrichedProduct) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}

func Test_Filter_Returns_Full_List_When_Criteria_Default(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)
	all := c.Products()

	got := catalog.Filter(all, catalog.DefaultCriteria())

	if diff := cmp.Diff(all, got); diff != "" {
		t.Fatalf("filter changed the list (-want +got):\n%s", diff)
	}

	assert.True(t, catalog.DefaultCriteria().IsDefault())
}

func Test_Filter_Keeps_Only_Owner_Products_When_Owner_Selected(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)

	for _, u := range c.Users() {
		got := c.Filter(catalog.Criteria{Owner: u.Name})

		var want []int

		for _, p := range c.Products() {
			if p.User.Name == u.Name {
				want = append(want, p.ID)
			}
		}

		if want == nil {
			want = []int{}
		}

		if diff := cmp.Diff(want, productIDs(got)); diff != "" {
			t.Errorf("owner %s (-want +got):\n%s", u.Name, diff)
		}
	}
}

func Test_Filter_Returns_Empty_When_Owner_Unknown_Or_Case_Differs(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)

	for _, owner := range []string{"Nobody", "anna", "ANNA", ""} {
		got := c.Filter(catalog.Criteria{Owner: owner})
		assert.NotNil(t, got)
		assert.Empty(t, got, "owner %q", owner)
	}
}

func Test_Filter_Matches_Name_Case_Insensitively_When_Query_Set(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)

	testCases := []struct {
		query string
		want  []string
	}{
		{query: "MILK", want: []string{"Milk", "Chocolate milk"}},
		{query: "milk", want: []string{"Milk", "Chocolate milk"}},
		{query: "an", want: []string{"Banana", "Orange juice"}},
		{query: "xyz", want: []string{}},
		{query: " ", want: []string{"Chocolate milk", "Orange juice"}},
	}

	for _, tc := range testCases {
		got := c.Filter(catalog.Criteria{Owner: catalog.AllOwners, Query: tc.query})

		if diff := cmp.Diff(tc.want, productNames(got)); diff != "" {
			t.Errorf("query %q (-want +got):\n%s", tc.query, diff)
		}
	}
}

func Test_Filter_Equals_Intersection_When_Both_Criteria_Set(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)
	owners := []string{catalog.AllOwners}

	for _, u := range c.Users() {
		owners = append(owners, u.Name)
	}

	for _, owner := range owners {
		for _, query := range []string{"", "a", "MILK", "e", "zzz"} {
			combined := c.Filter(catalog.Criteria{Owner: owner, Query: query})
			byOwner := c.Filter(catalog.Criteria{Owner: owner})
			byQuery := c.Filter(catalog.Criteria{Owner: catalog.AllOwners, Query: query})

			// Narrowing in the other order must give the same rows.
			reversed := catalog.Filter(byQuery, catalog.Criteria{Owner: owner})

			inQuery := make(map[int]bool)
			for _, p := range byQuery {
				inQuery[p.ID] = true
			}

			want := []int{}

			for _, p := range byOwner {
				if inQuery[p.ID] {
					want = append(want, p.ID)
				}
			}

			if diff := cmp.Diff(want, productIDs(combined)); diff != "" {
				t.Errorf("owner=%q query=%q (-want +got):\n%s", owner, query, diff)
			}

			if diff := cmp.Diff(productIDs(combined), productIDs(reversed)); diff != "" {
				t.Errorf("owner=%q query=%q order dependent (-combined +reversed):\n%s", owner, query, diff)
			}

			for _, p := range combined {
				assert.True(t, strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)))
			}
		}
	}
}

func Test_Filter_Does_Not_Modify_Input_When_Narrowing(t *testing.T) {
	t.Parallel()

	c := defaultCatalog(t)
	input := c.Products()
	before := c.Products()

	_ = catalog.Filter(input, catalog.Criteria{Owner: "Anna", Query: "a"})

	if diff := cmp.Diff(before, input); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calvinalkan/prodlist/internal/cli"
)

const singleFixtures = `{
	"users": [{"id": 1, "name": "Max", "sex": "m"}],
	"categories": [{"id": 1, "title": "Fruits", "icon": "🍎", "ownerId": 1}],
	"products": [{"id": 1, "name": "Banana", "categoryId": 1}],
}`

func Test_Ls_Command(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout []string // substrings to find in stdout
		notStdout  []string // substrings that should NOT be in stdout
	}{
		{
			name:       "lists every product",
			args:       []string{"ls"},
			wantStdout: []string{"ID", "Product", "Category", "User", "Milk", "Laptop", "Orange juice", "🍺 - Drinks"},
		},
		{
			name:       "filter by owner",
			args:       []string{"ls", "--owner", "Max"},
			wantStdout: []string{"Jacket", "T-shirt", "👚 - Clothes"},
			notStdout:  []string{"Milk", "Bread", "Roma", "Anna"},
		},
		{
			name:       "filter by owner short flag",
			args:       []string{"ls", "-u", "Anna"},
			wantStdout: []string{"Bread", "Banana"},
			notStdout:  []string{"Milk", "Jacket"},
		},
		{
			name:       "filter by search ignores case",
			args:       []string{"ls", "--search", "MILK"},
			wantStdout: []string{"Milk", "Chocolate milk"},
			notStdout:  []string{"Bread", "Orange juice"},
		},
		{
			name:       "owner and search combine",
			args:       []string{"ls", "--owner=Anna", "--search=a"},
			wantStdout: []string{"Bread", "Sugar", "Sausage", "Banana", "Apple"},
			notStdout:  []string{"Eggs", "Jacket", "Laptop"},
		},
		{
			name:       "owner All is no restriction",
			args:       []string{"ls", "--owner", "All"},
			wantStdout: []string{"Milk", "Jacket", "Laptop"},
		},
		{
			name:       "owner without products",
			args:       []string{"ls", "--owner", "John"},
			wantStdout: []string{"No products matching selected criteria"},
			notStdout:  []string{"Product"},
		},
		{
			name:       "owner name is case sensitive",
			args:       []string{"ls", "--owner", "max"},
			wantStdout: []string{"No products matching selected criteria"},
		},
		{
			name:       "no match",
			args:       []string{"ls", "--search", "xyz"},
			wantStdout: []string{"No products matching selected criteria"},
			notStdout:  []string{"ID"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			stdout := c.MustRun(tt.args...)

			for _, want := range tt.wantStdout {
				cli.AssertContains(t, stdout, want)
			}

			for _, notWant := range tt.notStdout {
				cli.AssertNotContains(t, stdout, notWant)
			}
		})
	}
}

func Test_Ls_Preserves_Fixture_Order_When_Filtered(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout := c.MustRun("ls", "--search", "a")

	lines := strings.Split(stdout, "\n")

	var names []string

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		names = append(names, fields[1])
	}

	assert.Equal(t, []string{"Bread", "Jacket", "Sugar", "Sausage", "Banana", "Apple", "Chocolate", "Laptop", "Orange"}, names)
}

func Test_Ls_Single_Product_From_Fixture_File_When_Configured(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("data/fixtures.json", singleFixtures)

	stdout := c.MustRun("--fixtures", "data/fixtures.json", "ls")

	lines := strings.Split(stdout, "\n")
	if got, want := len(lines), 2; got != want {
		t.Fatalf("lines=%d, want=%d\n%s", got, want, stdout)
	}

	assert.Equal(t, []string{"1", "Banana", "🍎", "-", "Fruits", "Max"}, strings.Fields(lines[1]))
}

func Test_Ls_Colors_Owner_When_Color_Always(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["PRODLIST_COLOR"] = "always"

	stdout := c.MustRun("ls", "--owner", "Anna")

	cli.AssertContains(t, stdout, "\033[31mAnna\033[0m")
}

func Test_Ls_Fails_When_Fixtures_Dangle(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteFile("bad.json", `{
		"users": [{"id": 1, "name": "Max", "sex": "m"}],
		"categories": [{"id": 1, "title": "Fruits", "icon": "🍎", "ownerId": 2}],
		"products": [{"id": 1, "name": "Banana", "categoryId": 9}],
	}`)

	stderr := c.MustFail("--fixtures=bad.json", "ls")

	cli.AssertContains(t, stderr, "invalid fixtures")
	cli.AssertContains(t, stderr, "category 1: unknown owner: 2")
	cli.AssertContains(t, stderr, "product 1: unknown category: 9")
}

package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Fixtures are the three static input tables.
type Fixtures struct {
	Users      []User     `json:"users"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

//go:embed fixtures.json
var defaultFixtures []byte

// DefaultFixtures returns the built-in data set.
func DefaultFixtures() (Fixtures, error) {
	fx, err := ParseFixtures(defaultFixtures)
	if err != nil {
		return Fixtures{}, fmt.Errorf("built-in fixtures: %w", err)
	}

	return fx, nil
}

// LoadFixtures reads a fixture file. An empty path selects [DefaultFixtures].
func LoadFixtures(path string) (Fixtures, error) {
	if path == "" {
		return DefaultFixtures()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%w: %s: %w", ErrFixturesRead, path, err)
	}

	fx, err := ParseFixtures(data)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", path, err)
	}

	return fx, nil
}

// ParseFixtures decodes fixture tables from JSON with comments and trailing
// commas allowed. Unknown fields are rejected so typos in keys like
// "categoryId" do not turn into zero ids.
func ParseFixtures(data []byte) (Fixtures, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%w: invalid JSONC: %w", ErrFixturesInvalid, err)
	}

	var fx Fixtures

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	err = dec.Decode(&fx)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%w: invalid JSON: %w", ErrFixturesInvalid, err)
	}

	return fx, nil
}

// Package assets loads colour token definitions from an Xcode asset catalog.
//
// Each token is one <name>.colorset/Contents.json record holding a list of
// colour entries. An entry without an explicit appearance tag is the light
// variant; an entry tagged appearance "luminosity" with value "dark" is the
// dark variant.
package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/grovehq/contrastaudit/internal/colour"
)

// Appearance variant names, as used in records and reports.
const (
	VariantLight = "light"
	VariantDark  = "dark"
)

// VariantSet holds the light and dark samples for one token. Both variants
// are always present; loading fails otherwise.
type VariantSet struct {
	Light colour.RGB
	Dark  colour.RGB
}

// MissingVariantError reports a token record that parsed cleanly but did not
// define one of the two required appearance variants.
type MissingVariantError struct {
	Token   string
	Variant string
	Path    string
}

func (e *MissingVariantError) Error() string {
	return fmt.Sprintf("token %q: missing %s variant in %s", e.Token, e.Variant, e.Path)
}

// Store resolves token names against a single asset catalog directory.
// Loads are memoized by token name; tokens typically appear in several
// contrast pairs.
type Store struct {
	root   string
	logger hclog.Logger
	cache  map[string]VariantSet
}

// NewStore creates a store rooted at an asset catalog directory. A nil
// logger disables debug output.
func NewStore(root string, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		root:   root,
		logger: logger,
		cache:  make(map[string]VariantSet),
	}
}

// ValidateRoot checks that a catalog root exists and is a directory before a
// run starts, so a mistyped path fails up front rather than on the first
// token load.
func ValidateRoot(root string) error {
	if root == "" {
		return fmt.Errorf("asset catalog path cannot be empty")
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("asset catalog not found: %s", root)
		}
		return fmt.Errorf("failed to access asset catalog: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset catalog is not a directory: %s", root)
	}

	return nil
}

// contentsFile mirrors the subset of the colorset Contents.json schema the
// audit reads.
type contentsFile struct {
	Colors []colourEntry `json:"colors"`
}

type colourEntry struct {
	Appearances []appearance     `json:"appearances"`
	Color       colourDefinition `json:"color"`
}

type appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

type colourDefinition struct {
	Components components `json:"components"`
}

type components struct {
	Red   channel `json:"red"`
	Green channel `json:"green"`
	Blue  channel `json:"blue"`
}

// channel is an RGB component value. Xcode writes components as decimal
// strings ("0.400"); hand-edited catalogs sometimes carry plain JSON
// numbers. Both forms parse. Values are not range-checked: out-of-gamut
// components flow through to the maths unchanged.
type channel float64

// UnmarshalJSON implements json.Unmarshaler.
func (c *channel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid channel value %q: %w", s, err)
		}
		*c = channel(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid channel value %s", data)
	}
	*c = channel(f)
	return nil
}

// Variants resolves the light and dark RGB samples for a token.
//
// Classification walks the record's colour entries in order: an entry
// defaults to light unless it carries a luminosity/dark appearance tag. When
// a record defines the same variant twice the later entry wins, the same
// resolution the catalog itself applies to duplicate entries.
func (s *Store) Variants(token string) (VariantSet, error) {
	if set, ok := s.cache[token]; ok {
		return set, nil
	}

	path := filepath.Join(s.root, token+".colorset", "Contents.json")
	data, err := os.ReadFile(path) // #nosec G304 - catalog root is operator-controlled
	if err != nil {
		return VariantSet{}, fmt.Errorf("token %q: %w", token, err)
	}

	var contents contentsFile
	if err := json.Unmarshal(data, &contents); err != nil {
		return VariantSet{}, fmt.Errorf("token %q: parsing %s: %w", token, path, err)
	}

	variants := make(map[string]colour.RGB, 2)
	for _, entry := range contents.Colors {
		variant := VariantLight
		for _, a := range entry.Appearances {
			if a.Appearance == "luminosity" && a.Value == "dark" {
				variant = VariantDark
				break
			}
		}

		variants[variant] = colour.RGB{
			R: float64(entry.Color.Components.Red),
			G: float64(entry.Color.Components.Green),
			B: float64(entry.Color.Components.Blue),
		}
	}

	for _, variant := range []string{VariantLight, VariantDark} {
		if _, ok := variants[variant]; !ok {
			return VariantSet{}, &MissingVariantError{Token: token, Variant: variant, Path: path}
		}
	}

	set := VariantSet{Light: variants[VariantLight], Dark: variants[VariantDark]}
	s.cache[token] = set

	s.logger.Debug("loaded token", "token", token, "path", path,
		"light", fmt.Sprintf("%.3f,%.3f,%.3f", set.Light.R, set.Light.G, set.Light.B),
		"dark", fmt.Sprintf("%.3f,%.3f,%.3f", set.Dark.R, set.Dark.G, set.Dark.B))

	return set, nil
}

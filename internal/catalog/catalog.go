// Package catalog holds the read-only shortcut and practical task definitions.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/shortcutmaster/internal/keys"
)

//go:embed catalog.json
var builtinData []byte

//go:embed schema.json
var schemaData []byte

// SupportedMajor is the catalog format major version this build understands.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned when the catalog version is not v1.x.y.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

// reserved combos are bound by the trainer's own screens and cannot be quiz targets.
var reserved = []keys.Set{
	keys.NewSet(keys.Tab),
	keys.NewSet(keys.Escape),
}

// Catalog is the loaded, validated set of tasks.
type Catalog struct {
	Version   string          `json:"version"`
	Shortcuts []Shortcut      `json:"shortcuts"`
	Practical []PracticalTask `json:"practical"`
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// Builtin returns the embedded catalog. It is parsed once per process.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Parse(builtinData)
	})
	return builtin, builtinErr
}

// Parse decodes raw JSON, validates it against the catalog schema, checks the
// format version and runs semantic checks.
func Parse(raw []byte) (*Catalog, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if !semver.IsValid(c.Version) || semver.Major(c.Version) != SupportedMajor {
		return nil, fmt.Errorf("%w: %q (want %s.x.y)", ErrUnsupportedVersion, c.Version, SupportedMajor)
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaData, &def); err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add catalog schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile catalog schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// check runs the rules a JSON schema cannot express and joins every failure.
func (c *Catalog) check() error {
	var errs []error
	seen := make(map[string]bool)
	dup := func(id string) {
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate id %q", id))
		}
		seen[id] = true
	}

	for _, s := range c.Shortcuts {
		dup(s.ID)
		if len(s.WinKeys) != len(s.WinDisplay) {
			errs = append(errs, fmt.Errorf("%s: win_keys/win_display length mismatch", s.ID))
		}
		if len(s.MacKeys) != len(s.MacDisplay) {
			errs = append(errs, fmt.Errorf("%s: mac_keys/mac_display length mismatch", s.ID))
		}
		for _, variant := range [][]string{s.WinKeys, s.MacKeys} {
			for _, k := range variant {
				if keys.Normalize(k) != k {
					errs = append(errs, fmt.Errorf("%s: key %q is not normalized (want %q)", s.ID, k, keys.Normalize(k)))
				}
			}
			set := keys.NewSet(variant...)
			if set.Len() != len(variant) {
				errs = append(errs, fmt.Errorf("%s: repeated key in %v", s.ID, variant))
			}
			for _, r := range reserved {
				if set.Equal(r) {
					errs = append(errs, fmt.Errorf("%s: %s is reserved by the trainer", s.ID, r))
				}
			}
		}
	}

	for _, p := range c.Practical {
		dup(p.ID)
		if p.Kind.UsesText() && p.InitialText == "" {
			errs = append(errs, fmt.Errorf("%s: %s task needs initial_text", p.ID, p.Kind))
		}
	}
	return errors.Join(errs...)
}

// Categories returns the distinct shortcut categories in first-seen order.
func (c *Catalog) Categories() []Category {
	var out []Category
	seen := make(map[Category]bool)
	for _, s := range c.Shortcuts {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

// ParseCategory resolves a user-supplied category name, case-insensitively.
// "all" maps to CategoryAll.
func (c *Catalog) ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, string(CategoryAll)) {
		return CategoryAll, true
	}
	for _, cat := range c.Categories() {
		if strings.EqualFold(name, string(cat)) {
			return cat, true
		}
	}
	return "", false
}

// Filter returns the shortcuts in category, or all of them for CategoryAll.
// The returned slice is a copy.
func (c *Catalog) Filter(category Category) []Shortcut {
	if category == CategoryAll || category == "" {
		return append([]Shortcut(nil), c.Shortcuts...)
	}
	var out []Shortcut
	for _, s := range c.Shortcuts {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

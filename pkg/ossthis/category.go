// =============================================================================
// oss-this - Template Categories
// =============================================================================
//
// This file defines the fixed dispatch table: every template category maps to
// a static list of (source, destination) path pairs. Sources are relative to
// the template root, destinations are relative to the destination root. Both
// are slash-separated.
//
// TABLE:
//   github          -> .github/PULL_REQUEST_TEMPLATE.md
//                      .github/ISSUE_TEMPLATE/bug_report.md
//                      .github/ISSUE_TEMPLATE/feature_request.md
//   contributing    -> CONTRIBUTING.md, CONTRIBUTORS.md
//   code-of-conduct -> CODE_OF_CONDUCT.md
//   changelog       -> CHANGELOG.md
//   license         -> LICENSE
//
// =============================================================================

package ossthis

import (
	"fmt"
	"strings"
)

// =============================================================================
// CATEGORY
// =============================================================================

// Category is a named bundle of template file mappings.
type Category string

const (
	GitHub        Category = "github"
	Contributing  Category = "contributing"
	CodeOfConduct Category = "code-of-conduct"
	Changelog     Category = "changelog"
	License       Category = "license"
)

// Mapping is a single copy action.
type Mapping struct {
	// Source is the path inside the template root.
	Source string

	// Dest is the path relative to the destination root.
	Dest string
}

// order is the canonical run order.
var order = []Category{GitHub, Contributing, CodeOfConduct, Changelog, License}

var table = map[Category][]Mapping{
	GitHub: {
		{Source: "github/PULL_REQUEST_TEMPLATE.md", Dest: ".github/PULL_REQUEST_TEMPLATE.md"},
		{Source: "github/ISSUE_TEMPLATE/bug_report.md", Dest: ".github/ISSUE_TEMPLATE/bug_report.md"},
		{Source: "github/ISSUE_TEMPLATE/feature_request.md", Dest: ".github/ISSUE_TEMPLATE/feature_request.md"},
	},
	Contributing: {
		{Source: "docs/CONTRIBUTING.md", Dest: "CONTRIBUTING.md"},
		{Source: "docs/CONTRIBUTORS.md", Dest: "CONTRIBUTORS.md"},
	},
	CodeOfConduct: {
		{Source: "docs/CODE_OF_CONDUCT.md", Dest: "CODE_OF_CONDUCT.md"},
	},
	Changelog: {
		{Source: "docs/CHANGELOG.md", Dest: "CHANGELOG.md"},
	},
	License: {
		{Source: "docs/LICENSE", Dest: "LICENSE"},
	},
}

// descriptions are shown by the CLI.
var descriptions = map[Category]string{
	GitHub:        "GitHub templates (PR, issues)",
	Contributing:  "CONTRIBUTING.md and CONTRIBUTORS.md",
	CodeOfConduct: "CODE_OF_CONDUCT.md",
	Changelog:     "CHANGELOG.md",
	License:       "LICENSE file",
}

// AllCategories returns every category in canonical order.
func AllCategories() []Category {
	out := make([]Category, len(order))
	copy(out, order)
	return out
}

// Mappings returns a copy of the mappings for the category, or nil if the
// category is unknown.
func (c Category) Mappings() []Mapping {
	m, ok := table[c]
	if !ok {
		return nil
	}
	out := make([]Mapping, len(m))
	copy(out, m)
	return out
}

// Description returns a short human-readable summary of the category.
func (c Category) Description() string {
	return descriptions[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := table[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a name such as "code-of-conduct" into a Category.
// Matching is case-insensitive and accepts underscores in place of dashes.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	if !c.Valid() {
		return "", fmt.Errorf("unknown template category %q", name)
	}
	return c, nil
}

// Normalize orders categories canonically and drops duplicates and unknown
// values.
func Normalize(categories []Category) []Category {
	selected := make(map[Category]bool, len(categories))
	for _, c := range categories {
		selected[c] = true
	}

	var out []Category
	for _, c := range order {
		if selected[c] {
			out = append(out, c)
		}
	}
	return out
}

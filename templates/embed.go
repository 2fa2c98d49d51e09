// Package templates holds the bundled template root: the canonical GitHub
// templates and repository documents copied into target repositories.
package templates

import "embed"

// FS contains the github/ and docs/ template trees.
//
//go:embed all:github all:docs
var FS embed.FS

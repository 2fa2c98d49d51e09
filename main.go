// =============================================================================
// oss-this - Main Entry Point
// =============================================================================
//
// This is the main entry point for the oss-this CLI application. It delegates
// command execution to the cmd package.
//
// USAGE:
//   oss-this --all              - Add every template to the current directory
//   oss-this -g -d ./project    - Add GitHub templates to ./project
//   oss-this list               - List template categories
//   oss-this version            - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Configuration loading (not for external import)
//   - pkg/           : Importable template operations and file utilities
//   - templates/     : The bundled template files
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/oss-this/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}

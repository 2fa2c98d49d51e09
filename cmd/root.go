// =============================================================================
// oss-this - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the flag dispatcher: each category flag selects a template category, and
// the selected categories are copied into the destination directory.
//
// COBRA CLI STRUCTURE:
//   rootCmd (oss-this)
//   ├── listCmd    (oss-this list)
//   └── versionCmd (oss-this version)
//
// EXIT STATUS:
//   0 - success, help shown, or individual files failed to copy
//   1 - destination missing, bad configuration, or an unexpected error
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/oss-this/internal/config"
	"github.com/ginjaninja78/oss-this/pkg/ossthis"
	"github.com/ginjaninja78/oss-this/pkg/utils"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// rootOptions holds the values bound to the root command's flags.
type rootOptions struct {
	all           bool
	github        bool
	contributing  bool
	codeOfConduct bool
	changelog     bool
	license       bool

	// destination is the target repository directory.
	// Empty means the configured destination (the working directory by default).
	destination string

	// cfgFile is the path to the configuration file.
	cfgFile string

	verbose bool
	dryRun  bool
	noColor bool
}

// selected returns the categories chosen by the flags in canonical order.
func (o *rootOptions) selected() []ossthis.Category {
	if o.all {
		return ossthis.AllCategories()
	}

	flags := map[ossthis.Category]bool{
		ossthis.GitHub:        o.github,
		ossthis.Contributing:  o.contributing,
		ossthis.CodeOfConduct: o.codeOfConduct,
		ossthis.Changelog:     o.changelog,
		ossthis.License:       o.license,
	}

	var out []ossthis.Category
	for _, c := range ossthis.AllCategories() {
		if flags[c] {
			out = append(out, c)
		}
	}
	return out
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "oss-this",
		Short:   "Automate adding common open source repository files",
		Version: Version,
		Long: `oss-this copies common open source repository files into a project:
GitHub issue and pull request templates, CONTRIBUTING.md, CONTRIBUTORS.md,
CODE_OF_CONDUCT.md, CHANGELOG.md and LICENSE.

Existing files are overwritten. A file that cannot be created is reported and
the remaining files are still copied.

Example Usage:
  oss-this --all                       # Add every template to the current directory
  oss-this -g -i -d ../my-project      # Add GitHub templates and LICENSE to ../my-project
  oss-this --all --dry-run             # Show what would be created`,

		SilenceUsage:  true,
		SilenceErrors: true,

		// RunE is like Run but returns an error, which Execute turns into
		// exit status 1.
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags at all: show help and do nothing else.
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}
			return runInstall(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, cmd.Flags().Changed("config"))
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.all, "all", "a", false, "Add all template files")
	flags.BoolVarP(&opts.github, "github", "g", false, "Add GitHub templates (PR, issues, etc.)")
	flags.BoolVarP(&opts.contributing, "contributing", "c", false, "Add CONTRIBUTING.md and CONTRIBUTORS.md")
	flags.BoolVarP(&opts.codeOfConduct, "code-of-conduct", "o", false, "Add CODE_OF_CONDUCT.md")
	flags.BoolVarP(&opts.changelog, "changelog", "l", false, "Add CHANGELOG.md")
	flags.BoolVarP(&opts.license, "license", "i", false, "Add LICENSE file")
	flags.StringVarP(&opts.destination, "destination", "d", "", "Destination directory (default is the current directory)")
	flags.StringVar(&opts.cfgFile, "config", config.DefaultFile, "Path to the configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Show which files would be created without writing them")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newListCmd(), newVersionCmd())

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

// =============================================================================
// INSTALL
// =============================================================================

// runInstall resolves the destination and copies the selected categories.
func runInstall(out, errOut io.Writer, opts *rootOptions, configRequired bool) error {
	if opts.noColor {
		color.Disable()
	}

	cfg, err := config.Load(opts.cfgFile, configRequired)
	if err != nil {
		return err
	}

	level := cfg.Level()
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.New().String())

	dest := opts.destination
	if dest == "" {
		dest = cfg.Destination
	}
	destDir, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("failed to resolve destination %s: %w", dest, err)
	}

	fmt.Fprintln(out, color.Blue.Sprint("🚀 Setting up open source files..."))

	if !utils.DirExists(destDir) {
		return fmt.Errorf("%w: %s", ossthis.ErrDestinationNotFound, destDir)
	}

	categories := opts.selected()
	if len(categories) == 0 {
		fmt.Fprintln(out, color.Yellow.Sprint("No template categories selected."))
		return nil
	}

	logger.Debug("starting run", "dest", destDir, "categories", categories, "dry_run", opts.dryRun)

	installer, err := ossthis.New(ossthis.Options{
		DestDir:         destDir,
		TemplateFS:      cfg.TemplateFS(),
		ContinueOnError: *cfg.ContinueOnError,
		DryRun:          opts.dryRun,
		Logger:          logger,
		OnResult: func(r ossthis.Result) {
			printResult(out, errOut, r)
		},
	})
	if err != nil {
		return err
	}

	results, err := installer.Install(categories...)
	if err != nil {
		return err
	}

	failed := ossthis.Failed(results)
	logger.Info("run complete", "files", len(results), "failed", len(failed))

	if len(failed) > 0 {
		fmt.Fprintln(out, color.Yellow.Sprintf("%d of %d file(s) could not be created.", len(failed), len(results)))
	}
	fmt.Fprintln(out, color.Green.Sprint("✨ All done! Your repository is now more open-source friendly."))

	return nil
}

// printResult prints one status line per copy action. Failures go to errOut.
func printResult(out, errOut io.Writer, r ossthis.Result) {
	switch {
	case r.Skipped:
		fmt.Fprintln(out, color.Cyan.Sprintf("• Would create %s", r.Dest))
	case r.Error != nil:
		fmt.Fprintln(errOut, color.Red.Sprintf("✗ Error creating %s: %v", r.Dest, r.Error))
	default:
		fmt.Fprintln(out, color.Green.Sprintf("✓ Created %s", r.Dest))
	}
}

// =============================================================================
// oss-this - Installer
// =============================================================================
//
// The installer runs the copy actions of one or more template categories
// against a destination root. It is shared by the importable Add* functions
// and by the command-line dispatcher; the two only differ in their error
// policy.
//
// ERROR POLICY:
//   - ContinueOnError = true  : every mapping is attempted, failures are
//                               recorded in their Result, Install returns nil.
//   - ContinueOnError = false : the first failed copy stops the run and
//                               Install returns an error naming the file.
//
// ORDERING:
//   Categories run in canonical order (github, contributing, code-of-conduct,
//   changelog, license) and mappings run in table order. Every copy completes
//   before the next one starts.
//
// =============================================================================

package ossthis

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/ginjaninja78/oss-this/pkg/utils"
	"github.com/ginjaninja78/oss-this/templates"
)

// ErrDestinationNotFound is returned when the destination root does not exist
// or is not a directory.
var ErrDestinationNotFound = errors.New("destination directory does not exist")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a single copy action.
type Result struct {
	// Category is the template category the mapping belongs to.
	Category Category

	// Source is the path inside the template root.
	Source string

	// Dest is the absolute destination path.
	Dest string

	// Success indicates whether the file was written.
	Success bool

	// Skipped is set for dry runs, where nothing is written.
	Skipped bool

	// Error contains the error if the copy failed.
	Error error
}

// =============================================================================
// OPTIONS
// =============================================================================

// Logger is the logging interface used by the installer. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Options configures an Installer.
type Options struct {
	// DestDir is the destination root. Relative paths are resolved against
	// the working directory.
	DestDir string

	// TemplateFS is the template root.
	// Default: the bundled templates.
	TemplateFS fs.FS

	// ContinueOnError selects the error policy (see the file header).
	ContinueOnError bool

	// DryRun reports what would be written without touching the destination.
	DryRun bool

	// Logger receives per-file debug logs and copy failures.
	// Default: discards everything.
	Logger Logger

	// OnResult, if set, is called after every copy action in run order.
	OnResult func(Result)
}

// =============================================================================
// INSTALLER
// =============================================================================

// Installer copies template categories into a destination root.
type Installer struct {
	opts Options
}

// New creates an Installer, applying defaults to unset options.
func New(opts Options) (*Installer, error) {
	if opts.DestDir == "" {
		opts.DestDir = "."
	}
	abs, err := filepath.Abs(opts.DestDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination %s: %w", opts.DestDir, err)
	}
	opts.DestDir = abs

	if opts.TemplateFS == nil {
		opts.TemplateFS = templates.FS
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Installer{opts: opts}, nil
}

// DestDir returns the absolute destination root.
func (in *Installer) DestDir() string {
	return in.opts.DestDir
}

// Install runs the copy actions for the given categories.
//
// RETURNS:
//   - One Result per attempted mapping, in run order.
//   - ErrDestinationNotFound if the destination root is missing, an error
//     for unknown categories, or (when ContinueOnError is false) the first
//     copy failure.
func (in *Installer) Install(categories ...Category) ([]Result, error) {
	for _, c := range categories {
		if !c.Valid() {
			return nil, fmt.Errorf("unknown template category %q", c)
		}
	}

	if !utils.DirExists(in.opts.DestDir) {
		return nil, fmt.Errorf("%w: %s", ErrDestinationNotFound, in.opts.DestDir)
	}

	fm := utils.NewFileManager(in.opts.TemplateFS, in.opts.DestDir)

	var results []Result
	for _, c := range Normalize(categories) {
		in.opts.Logger.Debug("installing category", "category", c, "dest", in.opts.DestDir)

		for _, m := range c.Mappings() {
			res := in.copy(fm, c, m)
			results = append(results, res)

			if in.opts.OnResult != nil {
				in.opts.OnResult(res)
			}

			if res.Error != nil && !in.opts.ContinueOnError {
				return results, fmt.Errorf("failed to create %s: %w", res.Dest, res.Error)
			}
		}
	}

	return results, nil
}

// copy performs a single mapping and records its outcome.
func (in *Installer) copy(fm *utils.FileManager, c Category, m Mapping) Result {
	res := Result{
		Category: c,
		Source:   m.Source,
		Dest:     fm.DestPath(m.Dest),
	}

	if in.opts.DryRun {
		res.Skipped = true
		in.opts.Logger.Debug("dry run, skipping copy", "source", m.Source, "dest", res.Dest)
		return res
	}

	if _, err := fm.CopyFromFS(m.Source, m.Dest); err != nil {
		res.Error = err
		in.opts.Logger.Warn("copy failed", "source", m.Source, "dest", res.Dest, "error", err)
		return res
	}

	res.Success = true
	in.opts.Logger.Debug("copied template", "source", m.Source, "dest", res.Dest)
	return res
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Error != nil {
			out = append(out, r)
		}
	}
	return out
}

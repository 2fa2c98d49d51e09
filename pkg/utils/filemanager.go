// =============================================================================
// oss-this - File Manager Utility
// =============================================================================
//
// This module provides the filesystem primitives used by the template
// installer:
//   - Directory management (ensuring destination directories exist)
//   - Copying a template file out of a template root into a destination root
//   - Existence checks for files and directories
//
// COPY SEMANTICS:
//   - Parent directories of the destination are created as needed (0755)
//   - Existing destination files are truncated and overwritten
//   - The written file is synced before it is closed
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager copies files from a template root into a destination root.
type FileManager struct {
	// TemplateFS is the template root. Paths passed to CopyFromFS are
	// slash-separated and relative to it.
	TemplateFS fs.FS

	// DestDir is the destination root. All writes are relative to it.
	DestDir string

	// DirMode is the permission used when creating directories.
	// Default: 0755
	DirMode os.FileMode

	// FileMode is the permission used when creating files.
	// Default: 0644
	FileMode os.FileMode
}

// NewFileManager creates a new FileManager for the given template root and
// destination root.
func NewFileManager(templateFS fs.FS, destDir string) *FileManager {
	return &FileManager{
		TemplateFS: templateFS,
		DestDir:    destDir,
		DirMode:    0755,
		FileMode:   0644,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates a directory relative to the destination root, along with
// any missing parents.
//
// RETURNS:
//   - The absolute path of the directory.
//   - An error if the directory cannot be created.
func (fm *FileManager) EnsureDir(rel string) (string, error) {
	dir := fm.DestPath(rel)
	if err := os.MkdirAll(dir, fm.DirMode); err != nil {
		return dir, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return dir, nil
}

// DestPath joins a slash-separated relative path onto the destination root.
func (fm *FileManager) DestPath(rel string) string {
	return filepath.Join(fm.DestDir, filepath.FromSlash(rel))
}

// =============================================================================
// FILE COPY
// =============================================================================

// CopyFromFS copies a file from the template root to the destination root.
//
// PARAMETERS:
//   - src: Path of the file inside the template root (slash-separated).
//   - dst: Path of the file relative to the destination root (slash-separated).
//
// RETURNS:
//   - The absolute destination path.
//   - An error if the source cannot be read or the destination cannot be written.
func (fm *FileManager) CopyFromFS(src, dst string) (string, error) {
	destPath := fm.DestPath(dst)

	if _, err := fm.EnsureDir(path.Dir(dst)); err != nil {
		return destPath, err
	}

	sourceFile, err := fm.TemplateFS.Open(src)
	if err != nil {
		return destPath, fmt.Errorf("failed to open template %s: %w", src, err)
	}
	defer sourceFile.Close()

	if err := writeFile(destPath, sourceFile, fm.FileMode); err != nil {
		return destPath, err
	}

	return destPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// writeFile writes the contents of r to name, replacing any existing file.
func writeFile(name string, r io.Reader, mode os.FileMode) error {
	destFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, r); err != nil {
		destFile.Close()
		return err
	}

	if err := destFile.Sync(); err != nil {
		destFile.Close()
		return err
	}

	return destFile.Close()
}

// FileExists checks if a file exists.
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return !os.IsNotExist(err)
}

// DirExists checks if name exists and is a directory.
func DirExists(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir()
}

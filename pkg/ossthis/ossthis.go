// Package ossthis adds common open source repository files (GitHub issue and
// pull request templates, contributing guides, a code of conduct, a changelog
// and a license) to a project directory.
//
// The Add* functions copy the bundled templates and stop at the first failed
// copy. Use an Installer directly to change the template root or the error
// policy.
package ossthis

// AddGitHubTemplates copies the pull request template and the bug report and
// feature request issue templates into destDir/.github.
func AddGitHubTemplates(destDir string) error {
	return add(destDir, GitHub)
}

// AddContributing copies CONTRIBUTING.md and CONTRIBUTORS.md into destDir.
func AddContributing(destDir string) error {
	return add(destDir, Contributing)
}

// AddCodeOfConduct copies CODE_OF_CONDUCT.md into destDir.
func AddCodeOfConduct(destDir string) error {
	return add(destDir, CodeOfConduct)
}

// AddChangelog copies CHANGELOG.md into destDir.
func AddChangelog(destDir string) error {
	return add(destDir, Changelog)
}

// AddLicense copies LICENSE into destDir.
func AddLicense(destDir string) error {
	return add(destDir, License)
}

// AddAll runs every category in order: GitHub templates, contributing,
// code of conduct, changelog, license.
func AddAll(destDir string) error {
	return add(destDir, AllCategories()...)
}

func add(destDir string, categories ...Category) error {
	in, err := New(Options{DestDir: destDir})
	if err != nil {
		return err
	}
	_, err = in.Install(categories...)
	return err
}

// Package settings scaffolds Drupal settings files into a Composer project.
//
// A Scaffolder copies templates from the recommended-settings package into
// the project's multisite directory without ever overwriting an existing
// file, expands ${...} placeholders in what it copied, and then makes sure
// settings.php requires the recommended settings include and carries the
// warning banner. Every step re-checks the filesystem, so running it again
// changes nothing. EnsureHashSalt writes the project's salt.txt.
package settings

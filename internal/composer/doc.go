// Package composer reads the parts of a Composer project that the settings
// scaffolder depends on: the vendor directory and Drupal web root declared in
// composer.json, and the install paths recorded in vendor/composer/installed.json.
package composer

// Package config builds the layered project configuration used to expand
// placeholders in scaffolded settings files. Values come, in increasing order
// of precedence, from built-in defaults, the settings package's
// default.settings.yml, the project's drs.yml and DRS_* environment variables.
//
// It also holds the CLI-level settings (log level and format, project root,
// settings package name) bound on the global viper instance.
package config

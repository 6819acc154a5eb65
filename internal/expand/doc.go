// Package expand substitutes ${dotted.key} placeholders in scaffolded files
// with values exported from the project configuration.
package expand

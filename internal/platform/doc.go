// Package platform provides cross-platform filesystem permission helpers.
// On Unix systems it calls chmod directly. On Windows, which has no
// Unix-style permission bits, every call is a no-op.
package platform

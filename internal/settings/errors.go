package settings

import (
	"errors"
	"fmt"
)

// Kind classifies scaffolding failures.
type Kind string

const (
	KindUnknown        Kind = "unknown"
	KindPathResolution Kind = "path_resolution"
	KindCopy           Kind = "copy"
	KindIO             Kind = "io"
	KindPermission     Kind = "permission"
)

// Error is a failure of one scaffolding step on one path.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind Kind, path string, err error) error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf extracts the Kind from a wrapped error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Package apperr holds the error kinds surfaced to the user and the single
// mapping from an error to a process exit code.
package apperr

import (
	"errors"
	"fmt"
	"os/exec"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindConfig
	KindNetwork
	KindParse
	KindPlatform
	KindDownload
	KindUsage
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config error"
	case KindNetwork:
		return "network error"
	case KindParse:
		return "parse error"
	case KindPlatform:
		return "unsupported platform"
	case KindDownload:
		return "download error"
	case KindUsage:
		return "usage error"
	default:
		return "error"
	}
}

// Error tags an underlying error with the operation that failed and its kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func Config(op string, err error) error { return newError(KindConfig, op, err) }
func Network(op string, err error) error { return newError(KindNetwork, op, err) }
func Parse(op string, err error) error { return newError(KindParse, op, err) }
func Platform(op string, err error) error { return newError(KindPlatform, op, err) }
func Download(op string, err error) error { return newError(KindDownload, op, err) }
func Usage(op string, err error) error { return newError(KindUsage, op, err) }

// KindOf reports the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps an error returned by a command to the process exit code.
// The exit status of a failed download program is passed through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is understands both marks and standard wrapping; use it instead of errors.Is
// whenever the error may have passed through Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// Kinded returns a sentinel that also matches kind under errors.Is, so
// callers can branch on the taxonomy without knowing every sentinel.
func Kinded(msg string, kind error) error {
	return &kindedError{msg: msg, kind: kind}
}

type kindedError struct {
	msg  string
	kind error
}

func (e *kindedError) Error() string { return e.msg }

func (e *kindedError) Is(target error) bool { return target == e.kind }

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

package scan

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfBounds is raised if a cursor is asked for the current rune while
// positioned at end of input. Grammars check AtEnd first, so seeing this error
// indicates a bug in the grammar rather than in the input.
var ErrOutOfBounds = errors.New("cursor read past end of input")

// Violation is a structural error in the input: a required literal was missing
// or did not match, e.g. a mismatched closing tag or an unrecognized unit.
type Violation struct {
	Pos  int // rune offset of the offending input
	Line int // 1-based
	Col  int // 1-based, counted in runes
	Msg  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%d:%d: %s", v.Line, v.Col, v.Msg)
}

// IsViolation reports whether err (or an error it wraps) is a *Violation.
func IsViolation(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}

// Abort carries a fatal parse error up the call stack of a recursive-descent
// parser. It is raised with panic and caught by Recover.
type Abort struct {
	Err error
}

func raise(err error) {
	panic(Abort{Err: err})
}

// Recover has to be deferred by every parser entry point. It stores the error
// of an Abort in *errp and re-panics anything else.
func Recover(errp *error) {
	if r := recover(); r != nil {
		a, ok := r.(Abort)
		if !ok {
			panic(r)
		}
		tracer().Errorf("parse aborted: %v", a.Err)
		*errp = a.Err
	}
}

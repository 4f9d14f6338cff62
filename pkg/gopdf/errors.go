package gopdf

import "github.com/pkg/errors"

// Error sentinels. All but ErrBadFont and ErrUnsupportedWidths are fatal
// and abort the whole page render (see isFatal); the interpreter and the
// Page Driver wrap them with the operator or stage that triggered them
// via errors.Wrap/Wrapf before returning, so callers can still recover
// the sentinel via errors.Cause or errors.Is against these values.
var (
	ErrMissingPage       = errors.New("missing page")
	ErrBadMediaBox       = errors.New("bad MediaBox")
	ErrUnbalancedStack   = errors.New("unbalanced graphics state stack")
	ErrMissingTextState  = errors.New("operator requires an active text object")
	ErrBadOperand        = errors.New("operand has the wrong type or arity")
	ErrBadFont           = errors.New("font could not be loaded")
	ErrUnsupportedWidths = errors.New("font widths array is not of the form [0 [w...]]")
)

// isFatal reports whether err should abort the page render, as opposed to
// a per-font error that only drops one font from the font map.
func isFatal(err error) bool {
	switch errors.Cause(err) {
	case ErrBadFont, ErrUnsupportedWidths:
		return false
	default:
		return err != nil
	}
}

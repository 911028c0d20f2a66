package validation

import (
	"fmt"

	"github.com/applogic-go/applogic/apperror"
)

// Result is the immutable outcome of running a validator in lenient mode.
// It behaves like a boolean with an optional application error attached:
// OK reports the success flag, and the code/field accessors delegate to the
// attached error when there is one.
type Result struct {
	Success bool
	// Err is the application error that caused the failure, if any. A failed
	// check that returned plain false carries no error.
	Err error
}

// Passed returns a passing Result.
func Passed() Result {
	return Result{Success: true}
}

// Failed returns a failing Result wrapping err. err may be nil for a generic
// failure without detail.
func Failed(err error) Result {
	return Result{Success: false, Err: err}
}

// OK reports whether the validation passed.
func (r Result) OK() bool {
	return r.Success
}

// ErrorCode returns the attached application error's code, or "" when there
// is no error or the error carries no code.
func (r Result) ErrorCode() string {
	if appErr, ok := apperror.As(r.Err); ok {
		return appErr.Code
	}

	return ""
}

// Errors returns the attached application error's field details, or nil when
// there is no error or the error carries none.
func (r Result) Errors() apperror.Fields {
	if appErr, ok := apperror.As(r.Err); ok {
		return appErr.Fields
	}

	return nil
}

func (r Result) String() string {
	return fmt.Sprintf("<Result success=%t error=%v>", r.Success, r.Err)
}

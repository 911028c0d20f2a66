// Package validation gates business logic behind uniform pass/fail checks.
//
// A check is any function reporting (bool, error): true means pass, false
// means a generic failure without detail, and a returned application error
// means a failure with a code and optional field details. A Validator wraps a
// check and exposes it in two modes: Validate (strict, failures become
// errors) and Check (lenient, failures become a Result the caller inspects).
// Errors outside the application hierarchy are never intercepted in either
// mode.
package validation

import (
	"context"

	"github.com/applogic-go/applogic/apperror"
)

// Checker is the contract a validator wraps.
type Checker[T any] interface {
	Check(ctx context.Context, v T) (bool, error)
}

// Func adapts an ordinary function to a Checker.
type Func[T any] func(ctx context.Context, v T) (bool, error)

func (fn Func[T]) Check(ctx context.Context, v T) (bool, error) {
	return fn(ctx, v)
}

// Predicate adapts a plain predicate that can neither fail with an error nor
// observe the validation mode. Both Validate and Check work on the resulting
// checker; the predicate itself never sees which one was called.
func Predicate[T any](pred func(ctx context.Context, v T) bool) Checker[T] {
	return Func[T](func(ctx context.Context, v T) (bool, error) {
		return pred(ctx, v), nil
	})
}

// All combines checks into one; they run in order and the first failure wins.
func All[T any](checks ...Checker[T]) Checker[T] {
	return Func[T](func(ctx context.Context, v T) (bool, error) {
		for _, c := range checks {
			if ok, err := c.Check(ctx, v); !ok || err != nil {
				return ok, err
			}
		}

		return true, nil
	})
}

// Validator normalizes a check's outcome into the uniform validation
// contract.
type Validator[T any] struct {
	check Checker[T]
}

// New returns a Validator wrapping the given check.
func New[T any](check Checker[T]) *Validator[T] {
	return &Validator[T]{
		check: check,
	}
}

// NewFunc returns a Validator wrapping a check function.
func NewFunc[T any](fn func(ctx context.Context, v T) (bool, error)) *Validator[T] {
	return New[T](Func[T](fn))
}

// NewPredicate returns a Validator wrapping a plain predicate.
func NewPredicate[T any](pred func(ctx context.Context, v T) bool) *Validator[T] {
	return New[T](Predicate[T](pred))
}

// Validate runs the check in strict mode. An application error is returned
// unchanged; a generic failure returns a fresh application error with no code
// and no fields; a pass returns nil. Errors outside the application hierarchy
// propagate unmodified.
func (v *Validator[T]) Validate(ctx context.Context, in T) error {
	ok, err := v.check.Check(ctx, in)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.New("validation failed")
	}

	return nil
}

// Check runs the check in lenient mode. A pass yields a truthy Result; an
// application error yields a falsy Result wrapping that exact error; a
// generic failure yields a falsy Result with no error attached. An error
// outside the application hierarchy is not captured and is returned as-is
// alongside a zero Result.
func (v *Validator[T]) Check(ctx context.Context, in T) (Result, error) {
	ok, err := v.check.Check(ctx, in)
	if err != nil {
		if apperror.IsApp(err) {
			return Failed(err), nil
		}

		return Result{}, err
	}
	if !ok {
		return Failed(nil), nil
	}

	return Passed(), nil
}

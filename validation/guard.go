package validation

import "context"

// Guarded is a function gated behind a validator. The validator always runs
// in strict mode, so a validation failure surfaces as an error to the caller
// and the function is never invoked.
type Guarded[T, R any] struct {
	validator *Validator[T]
	fn        func(ctx context.Context, in T) (R, error)
}

// ValidatedBy gates fn behind v. The validator receives exactly the input fn
// would receive.
func ValidatedBy[T, R any](v *Validator[T], fn func(ctx context.Context, in T) (R, error)) *Guarded[T, R] {
	return &Guarded[T, R]{
		validator: v,
		fn:        fn,
	}
}

// Call validates the input strictly, then invokes the function. On validation
// failure the function is not invoked and the failure propagates.
func (g *Guarded[T, R]) Call(ctx context.Context, in T) (R, error) {
	if err := g.validator.Validate(ctx, in); err != nil {
		var zero R
		return zero, err
	}

	return g.fn(ctx, in)
}

// CallUnvalidated invokes the function without running the validator at all,
// not even for side effects.
func (g *Guarded[T, R]) CallUnvalidated(ctx context.Context, in T) (R, error) {
	return g.fn(ctx, in)
}

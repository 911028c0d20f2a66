package validation

import (
	"context"
	"log/slog"

	"github.com/applogic-go/applogic/apperror"
)

// Logged wraps a check with structured logging of failures. Passing checks
// are silent; failures log the check name plus the application error's code
// and field details when present. Non-application errors are logged at error
// level since they signal infrastructure problems rather than failed rules.
func Logged[T any](name string, logger *slog.Logger, c Checker[T]) Checker[T] {
	return Func[T](func(ctx context.Context, v T) (bool, error) {
		ok, err := c.Check(ctx, v)
		switch {
		case err != nil:
			if appErr, isApp := apperror.As(err); isApp {
				logger.InfoContext(ctx, "validation failed",
					slog.String("check", name),
					slog.String("code", appErr.Code),
					slog.Any("fields", appErr.Fields),
				)
			} else {
				logger.ErrorContext(ctx, "validation check errored",
					slog.String("check", name),
					slog.Any("error", err),
				)
			}
		case !ok:
			logger.InfoContext(ctx, "validation failed",
				slog.String("check", name),
			)
		}

		return ok, err
	})
}

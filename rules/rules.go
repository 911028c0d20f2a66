// Package rules adapts struct-tag validation (go-playground/validator) to the
// validation package, so tag-based checks and hand-written business checks
// share one contract and one error shape.
package rules

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/applogic-go/applogic/apperror"
	"github.com/applogic-go/applogic/validation"
)

// ErrTranslatorNotFound indicates the English translator is unavailable.
var ErrTranslatorNotFound = errors.New("rules: translator not found")

// Rules holds a configured struct validator with English translations.
type Rules struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New constructs a Rules with default English translations.
func New() (*Rules, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	translator, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, err
	}

	return &Rules{
		validate:   validate,
		translator: translator,
	}, nil
}

// Register adds a custom tag with a fixed translated message. The message may
// reference the field name as {0}.
func (r *Rules) Register(tag string, fn validator.Func, message string) error {
	if err := r.validate.RegisterValidation(tag, fn); err != nil {
		return err
	}

	return r.validate.RegisterTranslation(tag, r.translator,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Error()
			}

			return t
		},
	)
}

// Struct returns a validator that checks T's struct tags. Tag violations fail
// with an application error coded invalid, carrying one translated message
// per field keyed in snake_case. Any other validator error propagates
// unmodified.
func Struct[T any](r *Rules) *validation.Validator[T] {
	return validation.NewFunc(func(ctx context.Context, v T) (bool, error) {
		err := r.validate.StructCtx(ctx, v)
		if err == nil {
			return true, nil
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return false, err
		}

		fields := make(apperror.Fields, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[toSnake(fe.Field())] = fe.Translate(r.translator)
		}

		return false, apperror.NewCode(apperror.CodeInvalid, "validation failed").WithFields(fields)
	})
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

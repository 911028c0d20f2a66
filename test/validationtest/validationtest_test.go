package validationtest_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/applogic-go/applogic/apperror"
	"github.com/applogic-go/applogic/test/validationtest"
)

// recorder captures fatal assertions instead of stopping the test.
type recorder struct {
	testing.TB
	failed   bool
	messages []string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestShouldRaiseErrorCodeMatch(t *testing.T) {
	appErr := apperror.NewCode("EMAIL_TAKEN", "email taken")

	rec := &recorder{TB: t}
	validationtest.ShouldRaiseErrorCode(rec, appErr, func() error {
		return appErr
	})

	assert.False(t, rec.failed)
}

func TestShouldRaiseErrorCodeMatchesEquivalentError(t *testing.T) {
	rec := &recorder{TB: t}
	validationtest.ShouldRaiseErrorCode(rec, apperror.NewCode("EMAIL_TAKEN", "email taken"), func() error {
		return apperror.NewCode("EMAIL_TAKEN", "email taken")
	})

	assert.False(t, rec.failed)
}

func TestShouldRaiseErrorCodeNoError(t *testing.T) {
	rec := &recorder{TB: t}
	validationtest.ShouldRaiseErrorCode(rec, apperror.New("expected"), func() error {
		return nil
	})

	assert := assert.New(t)
	assert.True(rec.failed)
	assert.Contains(rec.messages[0], "none was raised")
}

func TestShouldRaiseErrorCodeMismatch(t *testing.T) {
	rec := &recorder{TB: t}
	validationtest.ShouldRaiseErrorCode(rec, apperror.NewCode("EMAIL_TAKEN", "email taken"), func() error {
		return apperror.NewCode("NAME_TAKEN", "name taken")
	})

	assert := assert.New(t)
	assert.True(rec.failed)
	assert.Contains(rec.messages[0], "expected error")
}

func TestShouldRaiseErrorCodeNonApplicationError(t *testing.T) {
	sentinel := errors.New("boom")

	t.Run("matching sentinel passes", func(t *testing.T) {
		rec := &recorder{TB: t}
		validationtest.ShouldRaiseErrorCode(rec, sentinel, func() error {
			return fmt.Errorf("wrapped: %w", sentinel)
		})

		assert.False(t, rec.failed)
	})

	t.Run("different error fails", func(t *testing.T) {
		rec := &recorder{TB: t}
		validationtest.ShouldRaiseErrorCode(rec, sentinel, func() error {
			return errors.New("other")
		})

		assert.True(t, rec.failed)
	})
}

func TestShouldRaiseCode(t *testing.T) {
	t.Run("matching code passes", func(t *testing.T) {
		rec := &recorder{TB: t}
		validationtest.ShouldRaiseCode(rec, apperror.CodeForbidden, func() error {
			return apperror.NewCode(apperror.CodeForbidden, "not yours")
		})

		assert.False(t, rec.failed)
	})

	t.Run("wrong code fails", func(t *testing.T) {
		rec := &recorder{TB: t}
		validationtest.ShouldRaiseCode(rec, apperror.CodeForbidden, func() error {
			return apperror.NewCode(apperror.CodeConflict, "taken")
		})

		assert.True(t, rec.failed)
	})

	t.Run("non application error fails", func(t *testing.T) {
		rec := &recorder{TB: t}
		validationtest.ShouldRaiseCode(rec, apperror.CodeForbidden, func() error {
			return errors.New("plain")
		})

		assert.True(t, rec.failed)
	})
}

type mixinSuite struct {
	validationtest.Suite
}

func (s *mixinSuite) TestHelperAvailable() {
	appErr := apperror.NewCode("EMAIL_TAKEN", "email taken")
	s.ShouldRaiseErrorCode(appErr, func() error {
		return appErr
	})
	s.ShouldRaiseCode("EMAIL_TAKEN", func() error {
		return appErr
	})
}

func TestMixinSuite(t *testing.T) {
	suite.Run(t, new(mixinSuite))
}

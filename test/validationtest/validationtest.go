// Package validationtest provides assertion helpers for code gated by
// validators: run a scope, expect it to fail with a specific application
// error or error code.
package validationtest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/applogic-go/applogic/apperror"
)

// ShouldRaiseErrorCode asserts that fn fails with the expected error. The
// errors match when errors.Is reports so, or when both are application errors
// with equal code, message and fields. A mismatch fails the test with a diff.
func ShouldRaiseErrorCode(t testing.TB, want error, fn func() error) {
	t.Helper()

	err := fn()
	if err == nil {
		t.Fatalf("expected error %v, but none was raised", want)
		return
	}

	if !match(err, want) {
		t.Fatalf("expected error %v, but received %v\ndiff: %s", want, err, diff(want, err))
	}
}

// ShouldRaiseCode asserts that fn fails with an application error carrying
// the given code.
func ShouldRaiseCode(t testing.TB, code string, fn func() error) {
	t.Helper()

	err := fn()
	if err == nil {
		t.Fatalf("expected application error with code %q, but none was raised", code)
		return
	}

	appErr, ok := apperror.As(err)
	if !ok {
		t.Fatalf("expected application error with code %q, but received %v", code, err)
		return
	}
	if appErr.Code != code {
		t.Fatalf("expected error code %q, but received %q", code, appErr.Code)
	}
}

func match(got, want error) bool {
	if errors.Is(got, want) {
		return true
	}

	gotApp, ok := apperror.As(got)
	if !ok {
		return false
	}
	wantApp, ok := apperror.As(want)
	if !ok {
		return false
	}

	return gotApp.Code == wantApp.Code &&
		gotApp.Error() == wantApp.Error() &&
		cmp.Equal(gotApp.Fields, wantApp.Fields)
}

func diff(want, got error) string {
	wantApp, wantOK := apperror.As(want)
	gotApp, gotOK := apperror.As(got)
	if wantOK && gotOK {
		return cmp.Diff(
			map[string]any{"code": wantApp.Code, "message": wantApp.Error(), "fields": wantApp.Fields},
			map[string]any{"code": gotApp.Code, "message": gotApp.Error(), "fields": gotApp.Fields},
		)
	}

	return cmp.Diff(want.Error(), got.Error())
}

// Suite embeds testify's suite and exposes the assertion helpers as methods,
// for test suites that prefer the mixin style.
type Suite struct {
	suite.Suite
}

func (s *Suite) ShouldRaiseErrorCode(want error, fn func() error) {
	s.T().Helper()
	ShouldRaiseErrorCode(s.T(), want, fn)
}

func (s *Suite) ShouldRaiseCode(code string, fn func() error) {
	s.T().Helper()
	ShouldRaiseCode(s.T(), code, fn)
}

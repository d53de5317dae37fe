/*
Package assert provides the minimal set of test assertions used across the
packages. Each assertion fails the test immediately.
*/
package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/nftswap/errors"
)

// Tester is the minimal subset of testing.TB needed to run most assert commands
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// Use %+v so that if we are printing an error that supports
		// stack traces then a full stack trace is shown.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) (isnil bool) {
	if value == nil {
		return true
	}

	defer func() {
		if recover() != nil {
			isnil = false
		}
	}()

	// The argument must be a chan, func, interface, map, pointer, or slice
	// value; if it is not, IsNil panics.
	isnil = reflect.ValueOf(value).IsNil()
	return isnil
}

// Equal fails the test if two values are not equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics will run given function and recover any panic. It will fail the test
// if given function call did not panic.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// FieldError ensures that given error contains a field error for the given
// field name of the wanted kind. Use nil to ensure there is no error for
// that field.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()

	errs := errors.FieldErrors(err, fieldName)
	if want == nil {
		if len(errs) != 0 {
			t.Fatalf("expected no error, got %q", errs[0])
		}
		return
	}
	for _, e := range errs {
		if want.Is(e) {
			return
		}
	}
	t.Fatalf("no %q error found for field %q in %+v", want, fieldName, err)
}

// IsErr is a convenient helper that checks if the errors are a match
// and prints out the difference if not as well as failing the assertion.
func IsErr(t testing.TB, want *errors.Error, got error) {
	t.Helper()
	if !want.Is(got) {
		t.Fatalf("want %q, got %+v", want, got)
	}
}

package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Field returns an error instance that wraps the original error with
// additional information. It returns `nil` if provided error is `nil`.
// Use this function to create an error instance describing a field/attribute
// error.
//
// Use Go naming for the field name. For example, UserName or MaxAge. When the
// error is for a nested field, use dot notation, for example Wallet.Coins.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}

	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}

	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

// AppendField is a shortcut function to club together error(s) with a given
// field error.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

// Cause implements the causer interface.
func (err *fieldError) Cause() error {
	return err.parent
}

// Field returns the name of the field this error describes.
func (err *fieldError) Field() string {
	return err.field
}

type fielder interface {
	Field() string
}

// FieldErrors returns the list of all errors that are created for the given
// field name.
func FieldErrors(err error, fieldName string) []error {
	if isNilErr(err) {
		return nil
	}
	if u, ok := err.(unpacker); ok {
		var res []error
		for _, e := range u.Unpack() {
			res = append(res, FieldErrors(e, fieldName)...)
		}
		return res
	}
	for e := err; e != nil; {
		if f, ok := e.(fielder); ok && f.Field() == fieldName {
			return []error{err}
		}
		c, ok := e.(causer)
		if !ok {
			break
		}
		e = c.Cause()
	}
	return nil
}

// Append clubs together all provided errors. Nil values are ignored.
//
// If more than one non nil error is given, a composite error is returned.
// A composite error is of every kind any of its members is.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type unpacker interface {
	Unpack() []error
}

type multiErr []error

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors occurred: %s", len(m), strings.Join(msgs, "; "))
}

// Unpack returns all clubbed errors.
func (m multiErr) Unpack() []error {
	return m
}

// ABCICode returns the code of the first member that declares one.
func (m multiErr) ABCICode() uint32 {
	for _, e := range m {
		if c := abciCode(e); c != internalABCICode {
			return c
		}
	}
	return internalABCICode
}

package errors

import (
	e "emperror.dev/errors"
)

func New(message string) error {
	return e.New(message)
}

func Errorf(format string, a ...interface{}) error {
	return e.Errorf(format, a...)
}

func Wrap(err error, message string) error {
	return e.Wrap(err, message)
}

func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func Unwrap(err error) error {
	if cause := e.Cause(err); cause != nil {
		return cause
	}
	return err
}

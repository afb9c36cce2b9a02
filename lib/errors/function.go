package errors

import (
	"fmt"
	"strings"
)

// Newf creates a new raw error and trace it.
func Newf(format string, args ...interface{}) error {
	err := &wrap{
		previous: fmt.Errorf(format, args...),
	}
	err.setLocation(1)
	return err
}

// Trace attach a location to the error. It should be called each time an error
// is returned. If the error is nil, it returns nil.
func Trace(other error) error {
	if other == nil {
		return nil
	}
	err := &wrap{
		previous: other,
	}
	err.setLocation(1)
	return err
}

// NewUserErrorf marks this error as a UserError and attaches a consumable
// status, error code and message. The underlying error can be nil.
func NewUserErrorf(
	other error,
	status int,
	code string,
	format string,
	args ...interface{},
) UserError {
	err := &wrap{
		errStatus:  status,
		errCode:    code,
		errMessage: fmt.Sprintf(format, args...),
		previous:   other,
	}
	err.setLocation(1)
	return err
}

// ExtractUserError returns the most recent UserError attached to err, nil if
// the error carries no user information.
func ExtractUserError(err error) UserError {
	for err != nil {
		switch e := err.(type) {
		case *wrap:
			if e.isUserError() {
				return e
			}
			err = e.previous
		case UserError:
			return e
		default:
			return nil
		}
	}
	return nil
}

// Code extracts the most recent consumable code attached to the error if any.
func Code(err error) string {
	if e := ExtractUserError(err); e != nil {
		return e.Code()
	}
	return ""
}

// Message extracts the most recent consumable message attached to the error if
// any.
func Message(err error) string {
	if e := ExtractUserError(err); e != nil {
		return e.Message()
	}
	return ""
}

// ErrorStack returns the full stack of information attached to this error.
func ErrorStack(err error) []string {
	if err == nil {
		return []string{}
	}

	var lines []string
	for {
		var buff []byte
		if e, ok := err.(*wrap); ok {
			file, line := e.location()
			if file != "" {
				buff = append(buff, " "...)
				buff = append(buff, fmt.Sprintf("%s:%d", file, line)...)
				buff = append(buff, ": "...)
			}

			if e.isUserError() {
				buff = append(buff, fmt.Sprintf(
					"[%d] {%s} %s", e.errStatus, e.errCode, e.errMessage)...)
			} else {
				buff = append(buff, fmt.Sprintf("[trace] %s", e.traceMessage)...)
			}

			err = e.previous
		} else {
			buff = append(buff, err.Error()...)
			err = nil
		}
		lines = append(lines, string(buff))
		if err == nil {
			break
		}
	}

	// reverse the lines to get the original error, which was at the end of
	// the list, back to the start.
	var result []string
	for i := len(lines); i > 0; i-- {
		result = append(result, lines[i-1])
	}
	return result
}

// Details returned a formatted ErrorStack string
func Details(err error) string {
	return strings.Join(ErrorStack(err), "\n")
}

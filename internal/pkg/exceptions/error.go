package exceptions

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Code          string     `json:"-"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	last := e.Locations[len(e.Locations)-1]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, last.File, last.Line, last.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError is meant to be called from an error constructor; the
// recorded location is the constructor's caller. Locations of a wrapped
// CustomError are carried over so the full path stays visible in logs.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return build(4, err, statusCode, clientMessage, devMessage, devMessage)
}

func newCodedError(err error, statusCode int, clientMessage, code, devMessage string) *CustomError {
	return build(4, err, statusCode, clientMessage, code, devMessage)
}

func build(skip int, err error, statusCode int, clientMessage, code, devMessage string) *CustomError {
	location := getLocation(skip)

	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Code:          code,
		Err:           err,
	}

	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())

		var inner *CustomError
		if errors.As(err, &inner) {
			customErr.Locations = append(customErr.Locations, inner.Locations...)
		}
	}
	customErr.Locations = append(customErr.Locations, location)

	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

// HasCode reports whether the outermost CustomError in err's chain carries code.
func HasCode(err error, code string) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.Code == code
}

func IsInvalidInterval(err error) bool {
	return HasCode(err, constvars.ErrDevInvalidInterval)
}

func IsInvalidTimeFormat(err error) bool {
	return HasCode(err, constvars.ErrDevInvalidTimeFormat)
}

func IsNotFound(err error) bool {
	return HasCode(err, constvars.ErrDevNotFound)
}

func IsStorage(err error) bool {
	return HasCode(err, constvars.ErrDevStorage)
}

func IsConcurrentModification(err error) bool {
	return HasCode(err, constvars.ErrDevConcurrentModification)
}

func IsCapabilityDenied(err error) bool {
	return HasCode(err, constvars.ErrDevCapabilityDenied)
}

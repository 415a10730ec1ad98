package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Param carries the offending entity or field name so handlers can echo it back.
type Failure struct {
	Code    int    `json:"code"`
	Param   string `json:"parameter,omitempty"`
	Message string `json:"message"`
}

var InvalidFromParam = &Failure{Code: http.StatusBadRequest, Param: "from", Message: "invalid from parameter"}
var InvalidSizeParam = &Failure{Code: http.StatusBadRequest, Param: "size", Message: "invalid size parameter"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// NotFound returns a new Failure for an entity that is absent or not visible to the caller.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Param:   entityName,
		Message: fmt.Sprintf("%s not found", entityName),
	}
}

// Validation returns a new Failure for input that is semantically invalid for the current state.
func Validation(param string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Param:   param,
		Message: fmt.Sprintf("invalid %s", param),
	}
}

// AlreadyBusy returns a new Failure for an entity that is not available for the requested action.
func AlreadyBusy(entityName string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Param:   entityName,
		Message: fmt.Sprintf("%s is not available", entityName),
	}
}

// UnsupportedState returns a new Failure for an unrecognized state filter token.
func UnsupportedState(token string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Param:   token,
		Message: "Unknown state: UNSUPPORTED_STATUS",
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetParam returns the parameter of a Failure, or an empty string for other errors.
func GetParam(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Param
	}

	return ""
}

// IsCode reports whether err is a Failure carrying the given code.
func IsCode(err error, code int) bool {
	return GetCode(err) == code
}

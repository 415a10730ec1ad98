package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"shareit/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  int
		param string
	}{
		{
			name:  "NotFound",
			err:   failure.NotFound("booking"),
			code:  http.StatusNotFound,
			param: "booking",
		},
		{
			name:  "Validation",
			err:   failure.Validation("time"),
			code:  http.StatusBadRequest,
			param: "time",
		},
		{
			name:  "AlreadyBusy",
			err:   failure.AlreadyBusy("booking"),
			code:  http.StatusBadRequest,
			param: "booking",
		},
		{
			name:  "UnsupportedState",
			err:   failure.UnsupportedState("BOGUS"),
			code:  http.StatusBadRequest,
			param: "BOGUS",
		},
		{
			name:  "Conflict",
			err:   failure.Conflict("email already registered"),
			code:  http.StatusConflict,
			param: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
			if got := failure.GetParam(tt.err); got != tt.param {
				t.Errorf("expected param %q, got %q", tt.param, got)
			}
		})
	}
}

func TestUnsupportedState_Message(t *testing.T) {
	err := failure.UnsupportedState("BOGUS")

	if err.Error() != "Unknown state: UNSUPPORTED_STATUS" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", failure.NotFound("user"))

	if got := failure.GetCode(err); got != http.StatusNotFound {
		t.Errorf("expected code %d, got %d", http.StatusNotFound, got)
	}
	if got := failure.GetParam(err); got != "user" {
		t.Errorf("expected param user, got %q", got)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("expected code %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}

	err := failure.BadRequest(errors.New("validation failed"))
	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected bad request code, got %d", failure.GetCode(err))
	}
	if err.Error() != "validation failed" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestIsCode(t *testing.T) {
	if !failure.IsCode(failure.NotFound("item"), http.StatusNotFound) {
		t.Error("expected IsCode to match not found")
	}
	if failure.IsCode(failure.Validation("approved"), http.StatusNotFound) {
		t.Error("expected IsCode to reject mismatched code")
	}
}

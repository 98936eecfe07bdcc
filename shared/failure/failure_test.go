package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"oceanview/shared/failure"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("malformed date")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "malformed date",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("check-out date must be after check-in date"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "check-out date must be after check-in date",
		},
		{
			name:     "not found",
			err:      failure.NotFound("reservation not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "reservation not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("room is already booked for the requested dates"),
			wantCode: http.StatusConflict,
			wantMsg:  "room is already booked for the requested dates",
		},
		{
			name:     "payment declined",
			err:      failure.PaymentDeclined("payment declined by channel"),
			wantCode: http.StatusPaymentRequired,
			wantMsg:  "payment declined by channel",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, got)
			}

			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, tt.err.Error())
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode_WrappedAndUnknown(t *testing.T) {
	wrapped := fmt.Errorf("booking failed: %w", failure.Conflict("state conflict"))
	if got := failure.GetCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected wrapped failure to keep code %d, got %d", http.StatusConflict, got)
	}

	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain error to map to 500, got %d", got)
	}

	if !failure.IsCode(wrapped, http.StatusConflict) {
		t.Error("expected IsCode to match wrapped failure")
	}
}

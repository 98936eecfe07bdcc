package model_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oceanview/internal/domains/reservation/model"
	"oceanview/shared/failure"
)

func date(day int) time.Time {
	return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
}

func TestNewReservation_IDsAndDefaults(t *testing.T) {
	online := model.NewOnline("room-1", "guest-1", date(10), date(13), 300, "guest-1")
	walkIn := model.NewWalkIn("room-1", "guest-1", date(10), date(13), 300, "front-desk")

	assert.True(t, strings.HasPrefix(online.ID, "ONL_"))
	assert.Len(t, online.ID, 12)
	assert.Equal(t, model.KindOnline, online.Kind)
	assert.Equal(t, model.PaymentMethodGateway, online.PaymentMethod)
	assert.Equal(t, model.StatusPending, online.Status)

	assert.True(t, strings.HasPrefix(walkIn.ID, "WLK_"))
	assert.Equal(t, model.KindWalkIn, walkIn.Kind)
	assert.Equal(t, model.PaymentMethodPOS, walkIn.PaymentMethod)

	assert.Equal(t, 3, online.Nights())
}

// Nights are calendar days. A stay crossing the spring-forward switch loses a
// wall-clock hour but still bills every night.
func TestNightsBetween_DaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	checkIn := time.Date(2026, time.March, 7, 0, 0, 0, 0, loc)
	checkOut := time.Date(2026, time.March, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, 3, model.NightsBetween(checkIn, checkOut))

	res := model.NewOnline("room-1", "guest-1", checkIn, checkOut, 300, "guest-1")
	assert.Equal(t, 3, res.Nights())

	fall := time.Date(2026, time.October, 31, 0, 0, 0, 0, loc)
	fallOut := time.Date(2026, time.November, 3, 0, 0, 0, 0, loc)
	assert.Equal(t, 3, model.NightsBetween(fall, fallOut))
}

func TestReservation_Lifecycle(t *testing.T) {
	res := model.NewOnline("room-1", "guest-1", date(10), date(12), 200, "guest-1")

	assert.NoError(t, res.Confirm())
	assert.Equal(t, model.StatusConfirmed, res.Status)

	assert.NoError(t, res.CheckInGuest())
	assert.Equal(t, model.StatusCheckedIn, res.Status)

	assert.NoError(t, res.CheckOutGuest())
	assert.Equal(t, model.StatusCheckedOut, res.Status)
}

func TestReservation_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(r *model.Reservation) error
	}{
		{
			name: "check-in before confirmation",
			run:  func(r *model.Reservation) error { return r.CheckInGuest() },
		},
		{
			name: "check-out before check-in",
			run:  func(r *model.Reservation) error { return r.CheckOutGuest() },
		},
		{
			name: "double confirm",
			run: func(r *model.Reservation) error {
				if err := r.Confirm(); err != nil {
					return err
				}

				return r.Confirm()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := model.NewOnline("room-1", "guest-1", date(10), date(12), 200, "guest-1")

			err := tt.run(&res)

			assert.Error(t, err)
			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		})
	}
}

func TestReservation_Cancel(t *testing.T) {
	res := model.NewOnline("room-1", "guest-1", date(10), date(12), 200, "guest-1")

	assert.NoError(t, res.Cancel())
	assert.Equal(t, model.StatusCancelled, res.Status)

	// A cancelled reservation holds no claim and cannot be cancelled again here.
	err := res.Cancel()
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	checkedOut := model.NewWalkIn("room-1", "guest-1", date(10), date(12), 200, "front-desk")
	checkedOut.Status = model.StatusCheckedOut

	err = checkedOut.Cancel()
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestReservation_Overlaps(t *testing.T) {
	res := model.NewOnline("room-1", "guest-1", date(10), date(13), 300, "guest-1")

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{name: "identical range", checkIn: date(10), checkOut: date(13), want: true},
		{name: "inner range", checkIn: date(11), checkOut: date(12), want: true},
		{name: "straddles start", checkIn: date(8), checkOut: date(11), want: true},
		{name: "straddles end", checkIn: date(12), checkOut: date(15), want: true},
		{name: "back to back before", checkIn: date(8), checkOut: date(10), want: false},
		{name: "back to back after", checkIn: date(13), checkOut: date(15), want: false},
		{name: "disjoint", checkIn: date(20), checkOut: date(22), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}

func TestReservation_VariantFlags(t *testing.T) {
	online := model.NewOnline("room-1", "guest-1", date(10), date(12), 200, "guest-1")
	walkIn := model.NewWalkIn("room-1", "guest-1", date(10), date(12), 200, "front-desk")

	assert.NoError(t, online.MarkEmailSent())
	assert.True(t, online.EmailSent)
	assert.Error(t, online.MarkReceiptPrinted())

	assert.NoError(t, walkIn.MarkReceiptPrinted())
	assert.True(t, walkIn.ReceiptPrinted)
	assert.Error(t, walkIn.MarkEmailSent())
}

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"oceanview/shared/failure"
	"oceanview/shared/model"
	"oceanview/shared/timezone"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID             = "id"
	FieldRoomID         = "room_id"
	FieldGuestID        = "guest_id"
	FieldKind           = "kind"
	FieldStatus         = "status"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldTotalAmount    = "total_amount"
	FieldPaymentMethod  = "payment_method"
	FieldPaymentTxID    = "payment_tx_id"
	FieldEmailSent      = "email_sent"
	FieldReceiptPrinted = "receipt_printed"
)

const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
)

const (
	KindOnline = "ONLINE"
	KindWalkIn = "WALK_IN"
)

const (
	PaymentMethodPOS     = "POS"
	PaymentMethodGateway = "ONLINE_GATEWAY"

	idSuffixLength = 8
)

// ActiveStatuses are the states that hold a claim on room dates. A
// reservation outside these never blocks another booking.
var ActiveStatuses = []string{StatusPending, StatusConfirmed, StatusCheckedIn}

type Reservation struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	GuestID        string    `db:"guest_id"`
	Kind           string    `db:"kind"`
	Status         string    `db:"status"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	TotalAmount    float64   `db:"total_amount"`
	PaymentMethod  string    `db:"payment_method"`
	PaymentTxID    string    `db:"payment_tx_id"`
	EmailSent      bool      `db:"email_sent"`
	ReceiptPrinted bool      `db:"receipt_printed"`
	model.Metadata
}

func newReservation(prefix, roomID, guestID, kind, paymentMethod string, checkIn, checkOut time.Time, total float64, actor string) Reservation {
	now := timezone.Now()

	return Reservation{
		ID:            prefix + uuid.NewString()[:idSuffixLength],
		RoomID:        roomID,
		GuestID:       guestID,
		Kind:          kind,
		Status:        StatusPending,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		Metadata: model.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// NewOnline creates a pending online reservation paid through the gateway.
func NewOnline(roomID, guestID string, checkIn, checkOut time.Time, total float64, actor string) Reservation {
	return newReservation("ONL_", roomID, guestID, KindOnline, PaymentMethodGateway, checkIn, checkOut, total, actor)
}

// NewWalkIn creates a pending walk-in reservation paid at the POS terminal.
func NewWalkIn(roomID, guestID string, checkIn, checkOut time.Time, total float64, actor string) Reservation {
	return newReservation("WLK_", roomID, guestID, KindWalkIn, PaymentMethodPOS, checkIn, checkOut, total, actor)
}

// NightsBetween counts the calendar days between two dates. Counting by date
// components keeps a stay spanning a daylight-saving switch at its full
// length, where dividing wall-clock hours by 24 would come up short.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	return int(out.Sub(in).Hours() / 24)
}

// Nights counts the billed nights of the half-open [check-in, check-out) stay.
func (r *Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

func (r *Reservation) Active() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed || r.Status == StatusCheckedIn
}

// Overlaps reports whether the stay intersects the given half-open range.
// Back-to-back stays sharing a boundary date do not overlap.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn)
}

func (r *Reservation) transition(from, to string) error {
	if r.Status != from {
		return failure.Conflict(fmt.Sprintf("reservation %s cannot move from %s to %s", r.ID, r.Status, to)) // nolint:wrapcheck
	}

	r.Status = to

	return nil
}

func (r *Reservation) Confirm() error {
	return r.transition(StatusPending, StatusConfirmed)
}

func (r *Reservation) CheckInGuest() error {
	return r.transition(StatusConfirmed, StatusCheckedIn)
}

func (r *Reservation) CheckOutGuest() error {
	return r.transition(StatusCheckedIn, StatusCheckedOut)
}

// Cancel moves any active reservation to CANCELLED. Checked-out stays are
// immutable and cancelling twice is rejected here, callers treat the second
// cancel as a no-op before reaching this point.
func (r *Reservation) Cancel() error {
	if !r.Active() {
		return failure.Conflict(fmt.Sprintf("reservation %s cannot be cancelled from %s", r.ID, r.Status)) // nolint:wrapcheck
	}

	r.Status = StatusCancelled

	return nil
}

// MarkEmailSent records the confirmation email flag, online bookings only.
func (r *Reservation) MarkEmailSent() error {
	if r.Kind != KindOnline {
		return failure.Conflict("email confirmation applies to online reservations only") // nolint:wrapcheck
	}

	r.EmailSent = true

	return nil
}

// MarkReceiptPrinted records the printed receipt flag, walk-ins only.
func (r *Reservation) MarkReceiptPrinted() error {
	if r.Kind != KindWalkIn {
		return failure.Conflict("printed receipts apply to walk-in reservations only") // nolint:wrapcheck
	}

	r.ReceiptPrinted = true

	return nil
}

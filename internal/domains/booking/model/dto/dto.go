package dto

import (
	guestDto "oceanview/internal/domains/guest/model/dto"
	resDto "oceanview/internal/domains/reservation/model/dto"
	roomDto "oceanview/internal/domains/room/model/dto"
)

type CreateReservationRequest struct {
	RoomID   string                       `json:"room_id"   validate:"required"`
	Guest    guestDto.RegisterGuestRequest `json:"guest"     validate:"required"`
	CheckIn  string                       `json:"check_in"  validate:"required,dateonly"`
	CheckOut string                       `json:"check_out" validate:"required,dateonly"`
}

// ReservationResult is returned by the booking operations. Warnings carry
// delivery problems that did not stop the booking, such as a failed
// confirmation email.
type ReservationResult struct {
	Reservation resDto.ReservationResponse `json:"reservation"`
	Receipt     string                     `json:"receipt,omitempty"`
	Warnings    []string                   `json:"warnings,omitempty"`
}

type CheckOutResult struct {
	Reservation resDto.ReservationResponse `json:"reservation"`
	Invoice     string                     `json:"invoice"`
	Warnings    []string                   `json:"warnings,omitempty"`
}

type CancelResult struct {
	Reservation      resDto.ReservationResponse `json:"reservation"`
	Refunded         bool                       `json:"refunded"`
	AlreadyCancelled bool                       `json:"already_cancelled"`
	Warnings         []string                   `json:"warnings,omitempty"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type AvailableRoomsResponse struct {
	CheckIn  string                 `json:"check_in"`
	CheckOut string                 `json:"check_out"`
	Rooms    []roomDto.RoomResponse `json:"rooms"`
}

type UpdatePricingRequest struct {
	Strategy   string  `json:"strategy"   validate:"required,oneof=standard seasonal"`
	Multiplier float64 `json:"multiplier" validate:"omitempty,gt=0"`
}

type PricingResponse struct {
	Strategy string `json:"strategy"`
}

type UpdatePaymentChannelRequest struct {
	Channel string `json:"channel" validate:"required,oneof=pos gateway"`
}

type PaymentChannelResponse struct {
	Channel     string `json:"channel"`
	Description string `json:"description"`
}

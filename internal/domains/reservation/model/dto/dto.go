package dto

import (
	"oceanview/internal/domains/reservation/model"
	"oceanview/shared"
	"oceanview/shared/constant"
	gDto "oceanview/shared/dto"
	"oceanview/shared/timezone"
)

type ReservationResponse struct {
	ID             string  `json:"id"`
	RoomID         string  `json:"room_id"`
	GuestID        string  `json:"guest_id"`
	Kind           string  `json:"kind"`
	Status         string  `json:"status"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	Nights         int     `json:"nights"`
	TotalAmount    float64 `json:"total_amount"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentTxID    string  `json:"payment_tx_id,omitempty"`
	EmailSent      bool    `json:"email_sent"`
	ReceiptPrinted bool    `json:"receipt_printed"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.Kind = model.Kind
	r.Status = model.Status
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.TotalAmount = model.TotalAmount
	r.PaymentMethod = model.PaymentMethod
	r.PaymentTxID = model.PaymentTxID
	r.EmailSent = model.EmailSent
	r.ReceiptPrinted = model.ReceiptPrinted
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

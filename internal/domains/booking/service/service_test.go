package service_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oceanview/config"
	"oceanview/infras/lock"
	otelMocks "oceanview/infras/otel/mocks"
	"oceanview/internal/domains/booking/model/dto"
	"oceanview/internal/domains/booking/service"
	guestMocks "oceanview/internal/domains/guest/mocks"
	guestDto "oceanview/internal/domains/guest/model/dto"
	notificationMocks "oceanview/internal/domains/notification/mocks"
	"oceanview/internal/domains/payment"
	paymentMocks "oceanview/internal/domains/payment/mocks"
	"oceanview/internal/domains/pricing"
	resMocks "oceanview/internal/domains/reservation/mocks"
	resModel "oceanview/internal/domains/reservation/model"
	roomMocks "oceanview/internal/domains/room/mocks"
	roomModel "oceanview/internal/domains/room/model"
	cacheMocks "oceanview/shared/cache/mocks"
	"oceanview/shared/constant"
	"oceanview/shared/failure"
	"oceanview/shared/timezone"
)

type fixture struct {
	resRepo  *resMocks.MockReservation
	roomRepo *roomMocks.MockRoom
	guests   *guestMocks.MockGuestService
	payments *paymentMocks.MockService
	notifier *notificationMocks.MockNotifier
	svc      service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		resRepo:  resMocks.NewMockReservation(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		guests:   guestMocks.NewMockGuestService(ctrl),
		payments: paymentMocks.NewMockService(ctrl),
		notifier: notificationMocks.NewMockNotifier(ctrl),
	}

	cacheMock := cacheMocks.NewMockRedisCache(ctrl)
	cacheMock.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Pricing.Strategy = pricing.StrategyStandard
	cfg.Pricing.SeasonalMultiplier = 1.5

	f.svc = service.New(
		f.resRepo,
		f.roomRepo,
		f.guests,
		f.payments,
		f.notifier,
		lock.NewLocalLocker(),
		nil,
		cacheMock,
		cfg,
		otelMocks.NewOtel(),
	)

	return f
}

func futureDate(days int) string {
	return timezone.Format(timezone.Now().AddDate(0, 0, days), constant.DateOnlyFormat)
}

func deluxeRoom() roomModel.Room {
	return roomModel.Room{
		ID:       "room-1",
		Number:   "101",
		Type:     roomModel.TypeDeluxe,
		BaseRate: 100,
		Status:   roomModel.StatusAvailable,
		Clean:    true,
	}
}

func bookingRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		RoomID: "room-1",
		Guest: guestDto.RegisterGuestRequest{
			Name:       "Nimal Perera",
			NationalID: "199012345678",
			Email:      "nimal@example.com",
			Phone:      "+94771234567",
		},
		CheckIn:  futureDate(7),
		CheckOut: futureDate(10),
	}
}

func TestMakeOnlineReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := bookingRequest()

	f.guests.EXPECT().
		Register(gomock.Any(), req.Guest).
		Return(guestDto.GuestResponse{ID: "guest-1", Name: req.Guest.Name, NationalID: req.Guest.NationalID, Email: req.Guest.Email, Phone: req.Guest.Phone}, nil)

	f.roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(deluxeRoom(), nil)

	f.resRepo.EXPECT().
		FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	var inserted resModel.Reservation
	f.resRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r resModel.Reservation) error {
			inserted = r

			return nil
		})

	// Three nights at the 100 base rate under standard pricing.
	f.payments.EXPECT().
		Charge(gomock.Any(), 300.0).
		Return(payment.Transaction{ID: "GW_1", Amount: 300, Channel: payment.ChannelGateway}, nil)

	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), gomock.Any(), resModel.StatusPending, resModel.StatusConfirmed, gomock.Any(), gomock.Any()).
		Return(true, nil)

	f.roomRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), "room-1", roomModel.StatusAvailable, roomModel.StatusReserved, gomock.Any()).
		Return(true, nil)

	f.notifier.EXPECT().
		SendConfirmation(gomock.Any(), gomock.Any()).
		Return(nil)

	f.resRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := f.svc.MakeOnlineReservation(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, resModel.KindOnline, inserted.Kind)
	assert.Equal(t, resModel.StatusPending, inserted.Status)
	assert.Equal(t, 300.0, inserted.TotalAmount)
	assert.Equal(t, 3, inserted.Nights())
	assert.Equal(t, resModel.StatusConfirmed, res.Reservation.Status)
	assert.True(t, res.Reservation.EmailSent)
	assert.Empty(t, res.Warnings)
}

func TestMakeWalkInReservation_PrintsReceipt(t *testing.T) {
	f := newFixture(t)
	req := bookingRequest()

	f.guests.EXPECT().
		Register(gomock.Any(), req.Guest).
		Return(guestDto.GuestResponse{ID: "guest-1", Name: req.Guest.Name}, nil)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
	f.resRepo.EXPECT().FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	f.resRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().
		Charge(gomock.Any(), 300.0).
		Return(payment.Transaction{ID: "POS_1", Amount: 300, Channel: payment.ChannelPOS}, nil)
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), gomock.Any(), resModel.StatusPending, resModel.StatusConfirmed, gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.roomRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), "room-1", roomModel.StatusAvailable, roomModel.StatusReserved, gomock.Any()).
		Return(true, nil)
	f.notifier.EXPECT().
		PrintReceipt(gomock.Any(), gomock.Any()).
		Return("   OCEAN VIEW RESORT\n   Reservation Receipt", nil)
	f.resRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.MakeWalkInReservation(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, resModel.KindWalkIn, res.Reservation.Kind)
	assert.True(t, res.Reservation.ReceiptPrinted)
	assert.Contains(t, res.Receipt, "OCEAN VIEW RESORT")
}

func TestMakeReservation_RejectsBadDates(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"malformed check-in", "12-05-2026", futureDate(3)},
		{"check-out equals check-in", futureDate(3), futureDate(3)},
		{"check-out before check-in", futureDate(5), futureDate(3)},
		{"check-in in the past", futureDate(-2), futureDate(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := bookingRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut

			_, err := f.svc.MakeOnlineReservation(context.Background(), req)

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestMakeReservation_RoomUnderMaintenance(t *testing.T) {
	f := newFixture(t)
	req := bookingRequest()

	room := deluxeRoom()
	room.Status = roomModel.StatusUnderMaintenance

	f.guests.EXPECT().Register(gomock.Any(), req.Guest).Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

	_, err := f.svc.MakeOnlineReservation(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestMakeReservation_DatesAlreadyTaken(t *testing.T) {
	f := newFixture(t)
	req := bookingRequest()

	f.guests.EXPECT().Register(gomock.Any(), req.Guest).Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
	f.resRepo.EXPECT().
		FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
		Return([]resModel.Reservation{{ID: "ONL_existing"}}, nil)

	_, err := f.svc.MakeOnlineReservation(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestMakeReservation_PaymentDeclineReleasesClaim(t *testing.T) {
	f := newFixture(t)
	req := bookingRequest()

	f.guests.EXPECT().Register(gomock.Any(), req.Guest).Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
	f.resRepo.EXPECT().FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	f.resRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	f.payments.EXPECT().
		Charge(gomock.Any(), 300.0).
		Return(payment.Transaction{}, failure.PaymentDeclined("card declined at terminal"))

	// The pending claim must be released so the dates open up again.
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), gomock.Any(), resModel.StatusPending, resModel.StatusCancelled, gomock.Any(), gomock.Any()).
		Return(true, nil)

	_, err := f.svc.MakeOnlineReservation(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusPaymentRequired, failure.GetCode(err))
}

// Two concurrent requests for the same room and dates race through the
// availability check. The room lock serializes them, so exactly one wins and
// the other is told the dates are taken.
func TestMakeReservation_ConcurrentDoubleBooking(t *testing.T) {
	f := newFixture(t)
	req := bookingRequest()

	var claimed []resModel.Reservation

	f.guests.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(guestDto.GuestResponse{ID: "guest-1", Name: req.Guest.Name}, nil).
		Times(2)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil).Times(2)

	f.resRepo.EXPECT().
		FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, _ any) ([]resModel.Reservation, error) {
			return claimed, nil
		}).
		Times(2)

	f.resRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r resModel.Reservation) error {
			claimed = append(claimed, r)

			return nil
		})

	f.payments.EXPECT().
		Charge(gomock.Any(), 300.0).
		Return(payment.Transaction{ID: "GW_1", Amount: 300}, nil)
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), gomock.Any(), resModel.StatusPending, resModel.StatusConfirmed, gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.roomRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), "room-1", roomModel.StatusAvailable, roomModel.StatusReserved, gomock.Any()).
		Return(true, nil)
	f.notifier.EXPECT().SendConfirmation(gomock.Any(), gomock.Any()).Return(nil)
	f.resRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	errs := make(chan error, 2)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := f.svc.MakeOnlineReservation(context.Background(), req)
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		if err == nil {
			succeeded++

			continue
		}

		if failure.GetCode(err) == http.StatusConflict {
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Len(t, claimed, 1)
}

func TestCheckIn(t *testing.T) {
	f := newFixture(t)

	reservation := resModel.Reservation{
		ID:     "ONL_abc12345",
		RoomID: "room-1",
		Status: resModel.StatusConfirmed,
		Kind:   resModel.KindOnline,
	}

	f.resRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), reservation.ID, resModel.StatusConfirmed, resModel.StatusCheckedIn, gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.roomRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), "room-1", roomModel.StatusReserved, roomModel.StatusOccupied, gomock.Any()).
		Return(true, nil)

	res, err := f.svc.CheckIn(context.Background(), reservation.ID)

	assert.NoError(t, err)
	assert.Equal(t, resModel.StatusCheckedIn, res.Status)
}

func TestCheckIn_RejectsPendingReservation(t *testing.T) {
	f := newFixture(t)

	reservation := resModel.Reservation{
		ID:     "ONL_abc12345",
		RoomID: "room-1",
		Status: resModel.StatusPending,
	}

	// No status write and no room mutation may happen for an unpaid stay.
	f.resRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

	_, err := f.svc.CheckIn(context.Background(), reservation.ID)

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCheckOut(t *testing.T) {
	f := newFixture(t)

	reservation := resModel.Reservation{
		ID:          "WLK_abc12345",
		RoomID:      "room-1",
		GuestID:     "guest-1",
		Status:      resModel.StatusCheckedIn,
		Kind:        resModel.KindWalkIn,
		TotalAmount: 300,
	}

	f.resRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), reservation.ID, resModel.StatusCheckedIn, resModel.StatusCheckedOut, gomock.Any(), gomock.Any()).
		Return(true, nil)

	var roomFields map[string]any
	f.roomRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			roomFields = fields

			return nil
		})

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
	f.guests.EXPECT().Get(gomock.Any(), "guest-1").Return(guestDto.GuestResponse{ID: "guest-1", Name: "Nimal Perera"}, nil)
	f.notifier.EXPECT().
		PrintInvoice(gomock.Any(), gomock.Any()).
		Return("   Final Invoice\nTotal Bill: 300.00", nil)

	res, err := f.svc.CheckOut(context.Background(), reservation.ID)

	assert.NoError(t, err)
	assert.Equal(t, resModel.StatusCheckedOut, res.Reservation.Status)
	assert.Contains(t, res.Invoice, "Final Invoice")

	// The vacated room goes back to the pool flagged for housekeeping.
	assert.Equal(t, roomModel.StatusAvailable, roomFields[roomModel.FieldStatus])
	assert.Equal(t, false, roomFields[roomModel.FieldClean])
}

func TestCancel_RefundsOnce(t *testing.T) {
	f := newFixture(t)

	reservation := resModel.Reservation{
		ID:          "WLK_abc12345",
		RoomID:      "room-1",
		GuestID:     "guest-1",
		Status:      resModel.StatusConfirmed,
		Kind:        resModel.KindWalkIn,
		TotalAmount: 300,
		PaymentTxID: "POS_1",
	}

	f.resRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), reservation.ID, resModel.StatusConfirmed, resModel.StatusCancelled, gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.payments.EXPECT().Refund(gomock.Any(), "POS_1", 300.0).Return(nil)
	f.roomRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), "room-1", roomModel.StatusReserved, roomModel.StatusAvailable, gomock.Any()).
		Return(true, nil)

	res, err := f.svc.Cancel(context.Background(), reservation.ID)

	assert.NoError(t, err)
	assert.True(t, res.Refunded)
	assert.False(t, res.AlreadyCancelled)
	assert.Equal(t, resModel.StatusCancelled, res.Reservation.Status)

	// The second cancel is a no-op, the refund above already happened.
	cancelled := reservation
	cancelled.Status = resModel.StatusCancelled

	f.resRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

	res, err = f.svc.Cancel(context.Background(), reservation.ID)

	assert.NoError(t, err)
	assert.True(t, res.AlreadyCancelled)
	assert.False(t, res.Refunded)
}

func TestCancel_CheckedOutStayIsImmutable(t *testing.T) {
	f := newFixture(t)

	reservation := resModel.Reservation{
		ID:     "WLK_abc12345",
		RoomID: "room-1",
		Status: resModel.StatusCheckedOut,
	}

	f.resRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

	_, err := f.svc.Cancel(context.Background(), reservation.ID)

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCancel_RefundFailureBecomesWarning(t *testing.T) {
	f := newFixture(t)

	reservation := resModel.Reservation{
		ID:          "WLK_abc12345",
		RoomID:      "room-1",
		Status:      resModel.StatusConfirmed,
		Kind:        resModel.KindWalkIn,
		TotalAmount: 300,
		PaymentTxID: "POS_1",
	}

	f.resRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), reservation.ID, resModel.StatusConfirmed, resModel.StatusCancelled, gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.payments.EXPECT().
		Refund(gomock.Any(), "POS_1", 300.0).
		Return(failure.PaymentDeclined("refund rejected"))
	f.roomRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), "room-1", roomModel.StatusReserved, roomModel.StatusAvailable, gomock.Any()).
		Return(true, nil)

	res, err := f.svc.Cancel(context.Background(), reservation.ID)

	assert.NoError(t, err)
	assert.False(t, res.Refunded)
	assert.NotEmpty(t, res.Warnings)
	assert.Equal(t, resModel.StatusCancelled, res.Reservation.Status)
}

func TestIsRoomFree(t *testing.T) {
	f := newFixture(t)

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
	f.resRepo.EXPECT().
		FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	res, err := f.svc.IsRoomFree(context.Background(), "room-1", futureDate(7), futureDate(10))

	assert.NoError(t, err)
	assert.True(t, res.Available)
}

func TestIsRoomFree_MaintenanceBlocksBooking(t *testing.T) {
	f := newFixture(t)

	room := deluxeRoom()
	room.Status = roomModel.StatusUnderMaintenance

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

	res, err := f.svc.IsRoomFree(context.Background(), "room-1", futureDate(7), futureDate(10))

	assert.NoError(t, err)
	assert.False(t, res.Available)
}

func TestAvailableRooms(t *testing.T) {
	f := newFixture(t)

	booked := deluxeRoom()
	open := deluxeRoom()
	open.ID = "room-2"
	open.Number = "102"
	closed := deluxeRoom()
	closed.ID = "room-3"
	closed.Number = "103"
	closed.Status = roomModel.StatusUnderMaintenance

	f.resRepo.EXPECT().
		FindOverlappingInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]resModel.Reservation{{ID: "WLK_1", RoomID: booked.ID, Status: resModel.StatusConfirmed}}, nil)
	f.roomRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{booked, open, closed}, nil)

	res, err := f.svc.AvailableRooms(context.Background(), futureDate(7), futureDate(10))

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)
	assert.Equal(t, "room-2", res.Rooms[0].ID)
}

func TestSetPricingStrategy(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.SetPricingStrategy(dto.UpdatePricingRequest{Strategy: pricing.StrategySeasonal, Multiplier: 2})
	assert.NoError(t, err)
	assert.Equal(t, pricing.StrategySeasonal, res.Strategy)
	assert.Equal(t, pricing.StrategySeasonal, f.svc.PricingStrategy().Strategy)

	_, err = f.svc.SetPricingStrategy(dto.UpdatePricingRequest{Strategy: pricing.StrategySeasonal, Multiplier: -1})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	res, err = f.svc.SetPricingStrategy(dto.UpdatePricingRequest{Strategy: pricing.StrategyStandard})
	assert.NoError(t, err)
	assert.Equal(t, pricing.StrategyStandard, res.Strategy)
}

// Seasonal pricing scales the charged amount, so the payment channel must see
// the multiplied total.
func TestMakeReservation_SeasonalPricing(t *testing.T) {
	f := newFixture(t)
	req := bookingRequest()

	_, err := f.svc.SetPricingStrategy(dto.UpdatePricingRequest{Strategy: pricing.StrategySeasonal, Multiplier: 2})
	assert.NoError(t, err)

	f.guests.EXPECT().Register(gomock.Any(), req.Guest).Return(guestDto.GuestResponse{ID: "guest-1"}, nil)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxeRoom(), nil)
	f.resRepo.EXPECT().FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any()).Return(nil, nil)
	f.resRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	f.payments.EXPECT().
		Charge(gomock.Any(), 600.0).
		Return(payment.Transaction{ID: "GW_1", Amount: 600}, nil)
	f.resRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), gomock.Any(), resModel.StatusPending, resModel.StatusConfirmed, gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.roomRepo.EXPECT().
		UpdateStatusChecked(gomock.Any(), "room-1", roomModel.StatusAvailable, roomModel.StatusReserved, gomock.Any()).
		Return(true, nil)
	f.notifier.EXPECT().SendConfirmation(gomock.Any(), gomock.Any()).Return(nil)
	f.resRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.MakeOnlineReservation(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 600.0, res.Reservation.TotalAmount)
}

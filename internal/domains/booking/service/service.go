package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"oceanview/config"
	"oceanview/infras/kafka"
	"oceanview/infras/lock"
	"oceanview/infras/otel"
	"oceanview/internal/domains/booking/model/dto"
	guestService "oceanview/internal/domains/guest/service"
	"oceanview/internal/domains/notification"
	"oceanview/internal/domains/payment"
	"oceanview/internal/domains/pricing"
	resModel "oceanview/internal/domains/reservation/model"
	resDto "oceanview/internal/domains/reservation/model/dto"
	resRepository "oceanview/internal/domains/reservation/repository"
	roomModel "oceanview/internal/domains/room/model"
	roomDto "oceanview/internal/domains/room/model/dto"
	roomRepository "oceanview/internal/domains/room/repository"
	"oceanview/shared"
	"oceanview/shared/cache"
	"oceanview/shared/constant"
	gDto "oceanview/shared/dto"
	"oceanview/shared/failure"
	"oceanview/shared/timezone"
)

const (
	roomCachePrefix = "room:"
	roomLockPrefix  = "room:"
)

const (
	EventConfirmed  = "reservation.confirmed"
	EventCheckedIn  = "reservation.checked_in"
	EventCheckedOut = "reservation.checked_out"
	EventCancelled  = "reservation.cancelled"
)

// ReservationEvent is published to the reservation events topic on every
// lifecycle change.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	RoomID        string    `json:"room_id"`
	GuestID       string    `json:"guest_id"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Booking interface {
	MakeOnlineReservation(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResult, error)
	MakeWalkInReservation(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResult, error)
	CheckIn(ctx context.Context, reservationID string) (resDto.ReservationResponse, error)
	CheckOut(ctx context.Context, reservationID string) (dto.CheckOutResult, error)
	Cancel(ctx context.Context, reservationID string) (dto.CancelResult, error)
	Get(ctx context.Context, reservationID string) (resDto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (resDto.GetReservationsResponse, error)
	IsRoomFree(ctx context.Context, roomID, checkIn, checkOut string) (dto.AvailabilityResponse, error)
	AvailableRooms(ctx context.Context, checkIn, checkOut string) (dto.AvailableRoomsResponse, error)
	SetPricingStrategy(req dto.UpdatePricingRequest) (dto.PricingResponse, error)
	PricingStrategy() dto.PricingResponse
}

type serviceImpl struct {
	resRepo  resRepository.Reservation
	roomRepo roomRepository.Room
	guests   guestService.Guest
	payments payment.Service
	notifier notification.Notifier
	locker   lock.Locker
	kafka    kafka.Client
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel

	mu       sync.RWMutex
	strategy pricing.Strategy
}

func New(
	resRepo resRepository.Reservation,
	roomRepo roomRepository.Room,
	guests guestService.Guest,
	payments payment.Service,
	notifier notification.Notifier,
	locker lock.Locker,
	kafkaClient kafka.Client,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		resRepo:  resRepo,
		roomRepo: roomRepo,
		guests:   guests,
		payments: payments,
		notifier: notifier,
		locker:   locker,
		kafka:    kafkaClient,
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
		strategy: pricing.FromConfig(cfg),
	}
}

func (s *serviceImpl) MakeOnlineReservation(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResult, error) {
	return s.makeReservation(ctx, req, resModel.KindOnline)
}

func (s *serviceImpl) MakeWalkInReservation(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResult, error) {
	return s.makeReservation(ctx, req, resModel.KindWalkIn)
}

// makeReservation runs the whole booking flow: register the guest, claim the
// room dates under the room lock, charge the payment and confirm. A declined
// charge releases the pending claim before the error surfaces.
func (s *serviceImpl) makeReservation(ctx context.Context, req dto.CreateReservationRequest, kind string) (res dto.ReservationResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MakeReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor := actorFrom(ctx)

	checkIn, checkOut, err := s.parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	guest, err := s.guests.Register(ctx, req.Guest)
	if err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if !room.Bookable() {
		return res, failure.Conflict(fmt.Sprintf("room %s is under maintenance", room.Number)) // nolint:wrapcheck
	}

	nights := resModel.NightsBetween(checkIn, checkOut)
	total := s.quote(nights, room.BaseRate)

	reservation, err := s.claimRoomDates(ctx, kind, room.ID, guest.ID, checkIn, checkOut, total, actor)
	if err != nil {
		return res, err
	}

	tx, err := s.payments.Charge(ctx, total)
	if err != nil {
		s.releaseClaim(ctx, reservation, actor)

		return res, err
	}

	confirmed, err := s.resRepo.UpdateStatusChecked(ctx, reservation.ID, resModel.StatusPending, resModel.StatusConfirmed,
		map[string]any{resModel.FieldPaymentTxID: tx.ID}, actor)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to confirm reservation")

		return res, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	if !confirmed {
		s.refundBestEffort(ctx, tx.ID, total)

		return res, failure.Conflict(fmt.Sprintf("reservation %s was cancelled before confirmation", reservation.ID)) // nolint:wrapcheck
	}

	reservation.Status = resModel.StatusConfirmed
	reservation.PaymentTxID = tx.ID

	if ok, err := s.roomRepo.UpdateStatusChecked(ctx, room.ID, roomModel.StatusAvailable, roomModel.StatusReserved, actor); err != nil {
		log.Error().Err(err).Str("roomID", room.ID).Msg("failed to mark room reserved")
	} else if !ok {
		log.Warn().Str("roomID", room.ID).Msg("room already holds another status, skipping reserve")
	}

	receipt, warnings := s.deliverPaperwork(ctx, &reservation, room, guest.Name, guest.NationalID, guest.Phone, guest.Email, actor)
	res.Receipt = receipt
	res.Warnings = append(res.Warnings, warnings...)

	s.publishEvent(ctx, EventConfirmed, reservation)
	s.invalidateRoomCaches(ctx)

	res.Reservation.FromModel(reservation)

	return res, nil
}

// claimRoomDates holds the room lock while checking for overlapping stays and
// inserting the pending reservation, so two requests for the same dates cannot
// both pass the availability check.
func (s *serviceImpl) claimRoomDates(ctx context.Context, kind, roomID, guestID string, checkIn, checkOut time.Time, total float64, actor string) (reservation resModel.Reservation, err error) {
	release, err := s.locker.Acquire(ctx, roomLockPrefix+roomID)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to acquire room lock")

		return reservation, fmt.Errorf("failed to acquire room lock: %w", err)
	}
	defer release()

	overlapping, err := s.resRepo.FindOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to check room availability")

		return reservation, fmt.Errorf("failed to check room availability: %w", err)
	}

	if len(overlapping) > 0 {
		return reservation, failure.Conflict("room is not available for the requested dates") // nolint:wrapcheck
	}

	if kind == resModel.KindWalkIn {
		reservation = resModel.NewWalkIn(roomID, guestID, checkIn, checkOut, total, actor)
	} else {
		reservation = resModel.NewOnline(roomID, guestID, checkIn, checkOut, total, actor)
	}

	if err = s.resRepo.Insert(ctx, reservation); err != nil {
		return reservation, err
	}

	return reservation, nil
}

// releaseClaim cancels the pending reservation after a failed charge so the
// dates open up again.
func (s *serviceImpl) releaseClaim(ctx context.Context, reservation resModel.Reservation, actor string) {
	released, err := s.resRepo.UpdateStatusChecked(ctx, reservation.ID, resModel.StatusPending, resModel.StatusCancelled, nil, actor)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to release pending reservation")

		return
	}

	if released {
		reservation.Status = resModel.StatusCancelled
		s.publishEvent(ctx, EventCancelled, reservation)
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, reservationID string) (res resDto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor := actorFrom(ctx)

	reservation, err := s.getReservation(ctx, reservationID)
	if err != nil {
		return res, err
	}

	if err = reservation.CheckInGuest(); err != nil {
		return res, err
	}

	moved, err := s.resRepo.UpdateStatusChecked(ctx, reservation.ID, resModel.StatusConfirmed, resModel.StatusCheckedIn, nil, actor)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to check in reservation")

		return res, fmt.Errorf("failed to check in reservation: %w", err)
	}

	if !moved {
		return res, failure.Conflict(fmt.Sprintf("reservation %s changed state, retry the check-in", reservation.ID)) // nolint:wrapcheck
	}

	if ok, err := s.roomRepo.UpdateStatusChecked(ctx, reservation.RoomID, roomModel.StatusReserved, roomModel.StatusOccupied, actor); err != nil {
		log.Error().Err(err).Str("roomID", reservation.RoomID).Msg("failed to mark room occupied")
	} else if !ok {
		log.Warn().Str("roomID", reservation.RoomID).Msg("room was not in reserved status at check-in")
	}

	s.publishEvent(ctx, EventCheckedIn, reservation)
	s.invalidateRoomCaches(ctx)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, reservationID string) (res dto.CheckOutResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor := actorFrom(ctx)

	reservation, err := s.getReservation(ctx, reservationID)
	if err != nil {
		return res, err
	}

	if err = reservation.CheckOutGuest(); err != nil {
		return res, err
	}

	moved, err := s.resRepo.UpdateStatusChecked(ctx, reservation.ID, resModel.StatusCheckedIn, resModel.StatusCheckedOut, nil, actor)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to check out reservation")

		return res, fmt.Errorf("failed to check out reservation: %w", err)
	}

	if !moved {
		return res, failure.Conflict(fmt.Sprintf("reservation %s changed state, retry the check-out", reservation.ID)) // nolint:wrapcheck
	}

	// The vacated room needs housekeeping before it can be resold.
	fields := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusAvailable,
		roomModel.FieldClean:     false,
		constant.FieldModifiedBy: actor,
	}
	if err := s.roomRepo.Update(ctx, fields, shared.FilterByID(reservation.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Str("roomID", reservation.RoomID).Msg("failed to release room after check-out")
	}

	res.Invoice, res.Warnings = s.renderInvoice(ctx, reservation)

	s.publishEvent(ctx, EventCheckedOut, reservation)
	s.invalidateRoomCaches(ctx)

	res.Reservation.FromModel(reservation)

	return res, nil
}

// Cancel is idempotent: cancelling an already cancelled reservation reports
// AlreadyCancelled without touching the payment channel again.
func (s *serviceImpl) Cancel(ctx context.Context, reservationID string) (res dto.CancelResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor := actorFrom(ctx)

	reservation, err := s.getReservation(ctx, reservationID)
	if err != nil {
		return res, err
	}

	if reservation.Status == resModel.StatusCancelled {
		res.AlreadyCancelled = true
		res.Reservation.FromModel(reservation)

		return res, nil
	}

	previousStatus := reservation.Status

	if err = reservation.Cancel(); err != nil {
		return res, err
	}

	moved, err := s.resRepo.UpdateStatusChecked(ctx, reservation.ID, previousStatus, resModel.StatusCancelled, nil, actor)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to cancel reservation")

		return res, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if !moved {
		// A concurrent writer moved the reservation first. If it also landed on
		// CANCELLED the cancel already happened and this call is a no-op.
		current, err := s.getReservation(ctx, reservationID)
		if err != nil {
			return res, err
		}

		if current.Status == resModel.StatusCancelled {
			res.AlreadyCancelled = true
			res.Reservation.FromModel(current)

			return res, nil
		}

		return res, failure.Conflict(fmt.Sprintf("reservation %s changed state, retry the cancel", reservation.ID)) // nolint:wrapcheck
	}

	if reservation.PaymentTxID != constant.Empty {
		if err := s.payments.Refund(ctx, reservation.PaymentTxID, reservation.TotalAmount); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("refund failed")

			res.Warnings = append(res.Warnings, "refund could not be processed, follow up manually")
		} else {
			res.Refunded = true
		}
	}

	s.freeRoomAfterCancel(ctx, reservation.RoomID, previousStatus, actor)

	if reservation.Kind == resModel.KindOnline {
		s.sendCancellationEmail(ctx, reservation)
	}

	s.publishEvent(ctx, EventCancelled, reservation)
	s.invalidateRoomCaches(ctx)

	res.Reservation.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, reservationID string) (res resDto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getReservation(ctx, reservationID)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res resDto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.resRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.resRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// IsRoomFree reports whether the room can take the half-open date range. A
// stay ending on the range's first day does not block it.
func (s *serviceImpl) IsRoomFree(ctx context.Context, roomID, checkIn, checkOut string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsRoomFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := s.parseStayRange(checkIn, checkOut)
	if err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	res.RoomID = roomID
	res.CheckIn = timezone.Format(start, constant.DateOnlyFormat)
	res.CheckOut = timezone.Format(end, constant.DateOnlyFormat)

	if !room.Bookable() {
		return res, nil
	}

	overlapping, err := s.resRepo.FindOverlapping(ctx, roomID, start, end)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	res.Available = len(overlapping) == 0

	return res, nil
}

// AvailableRooms lists every room that can take the half-open date range:
// bookable status and no active stay intersecting it.
func (s *serviceImpl) AvailableRooms(ctx context.Context, checkIn, checkOut string) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := s.parseStayRange(checkIn, checkOut)
	if err != nil {
		return res, err
	}

	overlapping, err := s.resRepo.FindOverlappingInRange(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to find overlapping reservations")

		return res, fmt.Errorf("failed to find overlapping reservations: %w", err)
	}

	busy := make(map[string]struct{}, len(overlapping))
	for _, reservation := range overlapping {
		busy[reservation.RoomID] = struct{}{}
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.CheckIn = timezone.Format(start, constant.DateOnlyFormat)
	res.CheckOut = timezone.Format(end, constant.DateOnlyFormat)
	res.Rooms = []roomDto.RoomResponse{}

	for _, room := range rooms {
		if !room.Bookable() {
			continue
		}

		if _, taken := busy[room.ID]; taken {
			continue
		}

		var view roomDto.RoomResponse

		view.FromModel(room)
		res.Rooms = append(res.Rooms, view)
	}

	return res, nil
}

func (s *serviceImpl) SetPricingStrategy(req dto.UpdatePricingRequest) (dto.PricingResponse, error) {
	var strategy pricing.Strategy

	switch req.Strategy {
	case pricing.StrategySeasonal:
		multiplier := req.Multiplier
		if multiplier == 0 {
			multiplier = s.cfg.Pricing.SeasonalMultiplier
		}

		seasonal, err := pricing.NewSeasonal(multiplier)
		if err != nil {
			return dto.PricingResponse{}, err
		}

		strategy = seasonal
	default:
		strategy = pricing.NewStandard()
	}

	s.mu.Lock()
	s.strategy = strategy
	s.mu.Unlock()

	log.Info().Str("strategy", strategy.Name()).Msg("pricing strategy switched")

	return dto.PricingResponse{Strategy: strategy.Name()}, nil
}

func (s *serviceImpl) PricingStrategy() dto.PricingResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return dto.PricingResponse{Strategy: s.strategy.Name()}
}

func (s *serviceImpl) quote(nights int, baseRate float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.strategy.Total(nights, baseRate)
}

// parseStayRange validates a half-open [checkIn, checkOut) date range. The
// range must cover at least one night and must not start in the past.
func (s *serviceImpl) parseStayRange(checkIn, checkOut string) (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateOnlyFormat, checkIn)
	if err != nil {
		return start, end, failure.BadRequestFromString("check-in date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	end, err = timezone.Parse(constant.DateOnlyFormat, checkOut)
	if err != nil {
		return start, end, failure.BadRequestFromString("check-out date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !end.After(start) {
		return start, end, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if start.Before(today) {
		return start, end, failure.BadRequestFromString("check-in date cannot be in the past") // nolint:wrapcheck
	}

	return start, end, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomID", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) getReservation(ctx context.Context, id string) (resModel.Reservation, error) {
	reservation, err := s.resRepo.Get(ctx, shared.FilterByID(id, resModel.FieldID, resModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

// deliverPaperwork sends the confirmation email for online bookings or prints
// the receipt for walk-ins. Delivery problems come back as warnings, the
// booking itself already succeeded.
func (s *serviceImpl) deliverPaperwork(ctx context.Context, reservation *resModel.Reservation, room roomModel.Room, guestName, nationalID, phone, email, actor string) (receipt string, warnings []string) {
	stay := notification.StayDetails{
		ReservationID: reservation.ID,
		GuestName:     guestName,
		GuestEmail:    email,
		GuestPhone:    phone,
		NationalID:    nationalID,
		RoomNumber:    room.Number,
		RoomType:      room.Type,
		CheckIn:       reservation.CheckIn,
		CheckOut:      reservation.CheckOut,
		Nights:        reservation.Nights(),
		RatePerNight:  room.BaseRate,
		TotalAmount:   reservation.TotalAmount,
		PaymentMethod: reservation.PaymentMethod,
	}

	switch reservation.Kind {
	case resModel.KindOnline:
		if err := s.notifier.SendConfirmation(ctx, stay); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to send confirmation email")

			return receipt, append(warnings, "confirmation email could not be delivered")
		}

		if err := reservation.MarkEmailSent(); err != nil {
			return receipt, warnings
		}

		s.markDelivered(ctx, reservation.ID, resModel.FieldEmailSent, actor)
	case resModel.KindWalkIn:
		printed, err := s.notifier.PrintReceipt(ctx, stay)
		if err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to print receipt")

			return receipt, append(warnings, "receipt could not be printed")
		}

		receipt = printed

		if err := reservation.MarkReceiptPrinted(); err != nil {
			return receipt, warnings
		}

		s.markDelivered(ctx, reservation.ID, resModel.FieldReceiptPrinted, actor)
	}

	return receipt, warnings
}

func (s *serviceImpl) markDelivered(ctx context.Context, reservationID, field, actor string) {
	fields := map[string]any{
		field:                    true,
		constant.FieldModifiedBy: actor,
	}

	if err := s.resRepo.Update(ctx, fields, shared.FilterByID(reservationID, resModel.FieldID, resModel.TableName)); err != nil {
		log.Error().Err(err).Str("reservationID", reservationID).Str("field", field).Msg("failed to record delivery flag")
	}
}

func (s *serviceImpl) renderInvoice(ctx context.Context, reservation resModel.Reservation) (invoice string, warnings []string) {
	room, err := s.getRoom(ctx, reservation.RoomID)
	if err != nil {
		return invoice, append(warnings, "invoice could not be rendered")
	}

	guest, err := s.guests.Get(ctx, reservation.GuestID)
	if err != nil {
		return invoice, append(warnings, "invoice could not be rendered")
	}

	stay := notification.StayDetails{
		ReservationID: reservation.ID,
		GuestName:     guest.Name,
		GuestEmail:    guest.Email,
		GuestPhone:    guest.Phone,
		NationalID:    guest.NationalID,
		RoomNumber:    room.Number,
		RoomType:      room.Type,
		CheckIn:       reservation.CheckIn,
		CheckOut:      reservation.CheckOut,
		Nights:        reservation.Nights(),
		RatePerNight:  room.BaseRate,
		TotalAmount:   reservation.TotalAmount,
		PaymentMethod: reservation.PaymentMethod,
	}

	invoice, err = s.notifier.PrintInvoice(ctx, stay)
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to print invoice")

		return invoice, append(warnings, "invoice could not be printed")
	}

	return invoice, warnings
}

func (s *serviceImpl) sendCancellationEmail(ctx context.Context, reservation resModel.Reservation) {
	guest, err := s.guests.Get(ctx, reservation.GuestID)
	if err != nil {
		return
	}

	room, err := s.getRoom(ctx, reservation.RoomID)
	if err != nil {
		return
	}

	stay := notification.StayDetails{
		ReservationID: reservation.ID,
		GuestName:     guest.Name,
		GuestEmail:    guest.Email,
		RoomNumber:    room.Number,
	}

	if err := s.notifier.SendCancellation(ctx, stay); err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to send cancellation email")
	}
}

// freeRoomAfterCancel returns the room to the pool based on where the stay
// was when it got cancelled. A checked-in stay leaves the room dirty.
func (s *serviceImpl) freeRoomAfterCancel(ctx context.Context, roomID, previousStatus, actor string) {
	switch previousStatus {
	case resModel.StatusConfirmed:
		if _, err := s.roomRepo.UpdateStatusChecked(ctx, roomID, roomModel.StatusReserved, roomModel.StatusAvailable, actor); err != nil {
			log.Error().Err(err).Str("roomID", roomID).Msg("failed to release room after cancel")
		}
	case resModel.StatusCheckedIn:
		fields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			roomModel.FieldClean:     false,
			constant.FieldModifiedBy: actor,
		}
		if err := s.roomRepo.Update(ctx, fields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Str("roomID", roomID).Msg("failed to release room after cancel")
		}
	}
}

func (s *serviceImpl) refundBestEffort(ctx context.Context, txID string, amount float64) {
	if err := s.payments.Refund(ctx, txID, amount); err != nil {
		log.Error().Err(err).Str("transactionID", txID).Msg("refund failed")
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation resModel.Reservation) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		RoomID:        reservation.RoomID,
		GuestID:       reservation.GuestID,
		Status:        reservation.Status,
		TotalAmount:   reservation.TotalAmount,
		OccurredAt:    timezone.Now(),
	}

	message := kafka.Message{Key: reservation.ID, Value: event}
	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.ReservationEvents, message); err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to publish reservation event")
	}
}

func (s *serviceImpl) invalidateRoomCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, roomCachePrefix)
}

func actorFrom(ctx context.Context) string {
	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	if actor == constant.Empty {
		return constant.DefaultActor
	}

	return actor
}

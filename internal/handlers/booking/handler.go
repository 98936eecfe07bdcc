package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oceanview/infras/otel"
	"oceanview/internal/domains/booking/model/dto"
	"oceanview/internal/domains/booking/service"
	resModel "oceanview/internal/domains/reservation/model"
	"oceanview/shared/constant"
	gDto "oceanview/shared/dto"
	"oceanview/shared/validator"
	"oceanview/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/online", handler.MakeOnlineReservation)
		routerGroup.Post("/walk-in", handler.MakeWalkInReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Get("/available-rooms", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
	})
}

// MakeOnlineReservation books a room for a guest through the online channel.
// @Summary Make an online reservation
// @Description Book a room online. The total is charged through the payment gateway and a confirmation email is sent.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResult] "Confirmed reservation"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/online [post]
func (handler *Handler) MakeOnlineReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MakeOnlineReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.MakeOnlineReservation(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to make online reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation " + result.Reservation.ID + " confirmed")

	response.WithJSON(writer, http.StatusCreated, result)
}

// MakeWalkInReservation books a room for a guest at the front desk.
// @Summary Make a walk-in reservation
// @Description Book a room at the front desk. The total is charged at the POS terminal and a receipt is printed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResult] "Confirmed reservation with receipt"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/walk-in [post]
func (handler *Handler) MakeWalkInReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MakeWalkInReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.MakeWalkInReservation(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to make walk-in reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation " + result.Reservation.ID + " confirmed")

	response.WithJSON(writer, http.StatusCreated, result)
}

// GetReservations retrieves reservations with optional filters.
// @Summary Get all reservations
// @Description Retrieve reservations with optional filtering by room, status and kind.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Param status query string false "Filter by status"
// @Param kind query string false "Filter by kind"
// @Success 200 {object} response.Data[resDto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	for _, field := range []string{resModel.FieldRoomID, resModel.FieldStatus, resModel.FieldKind} {
		if value := r.URL.Query().Get(field); value != constant.Empty {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    resModel.TableName,
			})
		}
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetAvailability reports whether a room is free for a date range.
// @Summary Check room availability
// @Description Check whether a room can take the half-open [check_in, check_out) date range.
// @Tags Booking
// @Accept json
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	availability, err := handler.service.IsRoomFree(ctx,
		r.URL.Query().Get(constant.RequestParamRoomID),
		r.URL.Query().Get(constant.RequestParamCheckIn),
		r.URL.Query().Get(constant.RequestParamCheckOut),
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GetAvailableRooms lists the rooms open for a date range.
// @Summary List available rooms
// @Description List every room that can take the half-open [check_in, check_out) date range.
// @Tags Booking
// @Accept json
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/available-rooms [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	rooms, err := handler.service.AvailableRooms(ctx,
		r.URL.Query().Get(constant.RequestParamCheckIn),
		r.URL.Query().Get(constant.RequestParamCheckOut),
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list available rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available rooms listed successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[resDto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// CheckIn checks the guest into a confirmed reservation.
// @Summary Check in a reservation
// @Description Move a confirmed reservation to checked-in and mark the room occupied.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[resDto.ReservationResponse] "Checked-in reservation"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/check-in [post]
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.CheckIn(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + id + " checked in")

	response.WithJSON(w, http.StatusOK, reservation)
}

// CheckOut checks the guest out and issues the final invoice.
// @Summary Check out a reservation
// @Description Move a checked-in reservation to checked-out, release the room for housekeeping and issue the invoice.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.CheckOutResult] "Checked-out reservation with invoice"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/check-out [post]
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	result, err := handler.service.CheckOut(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + id + " checked out")

	response.WithJSON(w, http.StatusOK, result)
}

// Cancel cancels an active reservation. Cancelling twice is a no-op.
// @Summary Cancel a reservation
// @Description Cancel an active reservation and refund the charge when one was taken.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.CancelResult] "Cancelled reservation"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	result, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + id + " cancelled")

	response.WithJSON(w, http.StatusOK, result)
}

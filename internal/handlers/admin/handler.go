package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oceanview/config"
	"oceanview/infras/otel"
	"oceanview/internal/domains/booking/model/dto"
	bookingService "oceanview/internal/domains/booking/service"
	"oceanview/internal/domains/payment"
	"oceanview/shared/constant"
	"oceanview/shared/validator"
	"oceanview/transport/http/response"
)

// Handler exposes the runtime switches of the booking engine: the pricing
// strategy and the active payment channel.
type Handler struct {
	booking  bookingService.Booking
	payments payment.Service
	cfg      *config.Config
	otel     otel.Otel
}

func New(booking bookingService.Booking, payments payment.Service, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		booking:  booking,
		payments: payments,
		cfg:      cfg,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/pricing", handler.GetPricing)
		routerGroup.Put("/pricing", handler.UpdatePricing)
		routerGroup.Get("/payment-channel", handler.GetPaymentChannel)
		routerGroup.Put("/payment-channel", handler.UpdatePaymentChannel)
	})
}

// GetPricing reports the active pricing strategy.
// @Summary Get the pricing strategy
// @Description Retrieve the pricing strategy applied to new bookings.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PricingResponse] "Active pricing strategy"
// @Router /v1/admin/pricing [get]
func (handler *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricing")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.booking.PricingStrategy())
}

// UpdatePricing switches the pricing strategy for new bookings.
// @Summary Update the pricing strategy
// @Description Switch between standard and seasonal pricing. Already confirmed bookings keep their total.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdatePricingRequest true "Update Pricing Request"
// @Success 200 {object} response.Data[dto.PricingResponse] "Active pricing strategy"
// @Failure 400 {object} response.Error
// @Router /v1/admin/pricing [put]
func (handler *Handler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricing")
	defer scope.End()

	req := dto.UpdatePricingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	pricing, err := handler.booking.SetPricingStrategy(req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pricing strategy")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pricing strategy set to " + pricing.Strategy)

	response.WithJSON(w, http.StatusOK, pricing)
}

// GetPaymentChannel reports the active payment channel.
// @Summary Get the payment channel
// @Description Retrieve the payment channel new charges go through.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.PaymentChannelResponse] "Active payment channel"
// @Router /v1/admin/payment-channel [get]
func (handler *Handler) GetPaymentChannel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentChannel")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, dto.PaymentChannelResponse{
		Channel:     handler.payments.CurrentChannel(),
		Description: handler.payments.Describe(ctx),
	})
}

// UpdatePaymentChannel swaps the payment channel at runtime.
// @Summary Update the payment channel
// @Description Swap between the POS terminal and the online gateway. In-flight charges finish on the old channel.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdatePaymentChannelRequest true "Update Payment Channel Request"
// @Success 200 {object} response.Data[dto.PaymentChannelResponse] "Active payment channel"
// @Failure 400 {object} response.Error
// @Router /v1/admin/payment-channel [put]
func (handler *Handler) UpdatePaymentChannel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePaymentChannel")
	defer scope.End()

	req := dto.UpdatePaymentChannelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	var channel payment.Channel
	if req.Channel == payment.ChannelGateway {
		channel = payment.NewGateway(handler.cfg.Payment.GatewayBaseURL, handler.cfg.Payment.GatewayDeclineRate)
	} else {
		channel = payment.NewPOSTerminal("front-desk-1", handler.cfg.Payment.POSDeclineRate)
	}

	handler.payments.SetChannel(channel)

	scope.AddEvent("Payment channel set to " + req.Channel)

	response.WithJSON(w, http.StatusOK, dto.PaymentChannelResponse{
		Channel:     handler.payments.CurrentChannel(),
		Description: handler.payments.Describe(ctx),
	})
}

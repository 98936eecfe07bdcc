package payment_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oceanview/infras/otel/mocks"
	"oceanview/internal/domains/payment"
	paymentMocks "oceanview/internal/domains/payment/mocks"
	"oceanview/shared/failure"
)

func approve() float64 { return 1 }
func decline() float64 { return 0 }

func TestPOSTerminal_Charge(t *testing.T) {
	pos := payment.NewPOSTerminalWithRoll("front-desk-1", 0.05, approve)

	tx, err := pos.Charge(context.Background(), 300)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(tx.ID, "POS_"))
	assert.Equal(t, payment.ChannelPOS, tx.Channel)
	assert.Equal(t, 300.0, tx.Amount)
}

func TestPOSTerminal_Decline(t *testing.T) {
	pos := payment.NewPOSTerminalWithRoll("front-desk-1", 0.05, decline)

	_, err := pos.Charge(context.Background(), 300)

	assert.Error(t, err)
	assert.Equal(t, http.StatusPaymentRequired, failure.GetCode(err))
}

func TestGateway_Charge(t *testing.T) {
	gw := payment.NewGatewayWithRoll("https://pay.example", 0.1, approve)

	tx, err := gw.Charge(context.Background(), 450)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(tx.ID, "GW_"))
	assert.Equal(t, payment.ChannelGateway, tx.Channel)
}

func TestGateway_Decline(t *testing.T) {
	gw := payment.NewGatewayWithRoll("https://pay.example", 0.1, decline)

	_, err := gw.Charge(context.Background(), 450)

	assert.Error(t, err)
	assert.Equal(t, http.StatusPaymentRequired, failure.GetCode(err))
}

// Describe exposes the channel name together with its last transaction, the
// admin surface's only window into what a channel processed most recently.
func TestDescribe_TracksLastTransaction(t *testing.T) {
	pos := payment.NewPOSTerminalWithRoll("front-desk-1", 0, approve)

	assert.Contains(t, pos.Describe(), "front-desk-1")
	assert.Contains(t, pos.Describe(), "no transactions yet")

	tx, err := pos.Charge(context.Background(), 300)
	assert.NoError(t, err)
	assert.Contains(t, pos.Describe(), tx.ID)

	gw := payment.NewGatewayWithRoll("https://pay.example", 0, approve)

	assert.Contains(t, gw.Describe(), "no transactions yet")

	tx, err = gw.Charge(context.Background(), 450)
	assert.NoError(t, err)
	assert.Contains(t, gw.Describe(), tx.ID)
	assert.Contains(t, gw.Describe(), "https://pay.example/pay/")
}

// A declined gateway charge issues a payment link but settles nothing, so the
// last transaction must not change.
func TestGatewayDescribe_DeclineLeavesLastTransaction(t *testing.T) {
	gw := payment.NewGatewayWithRoll("https://pay.example", 0.1, decline)

	_, err := gw.Charge(context.Background(), 450)
	assert.Error(t, err)
	assert.Contains(t, gw.Describe(), "no transactions yet")
}

func TestService_RejectsNonPositiveAmounts(t *testing.T) {
	ctrl := gomock.NewController(t)

	channel := paymentMocks.NewMockChannel(ctrl)
	svc := payment.NewService(channel, mocks.NewOtel())

	// The channel must never be touched for invalid amounts.
	_, err := svc.Charge(context.Background(), 0)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Charge(context.Background(), -10)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	err = svc.Refund(context.Background(), "POS_1", 0)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	err = svc.Refund(context.Background(), "", 50)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestService_DelegatesToChannel(t *testing.T) {
	ctrl := gomock.NewController(t)

	channel := paymentMocks.NewMockChannel(ctrl)
	svc := payment.NewService(channel, mocks.NewOtel())

	channel.EXPECT().
		Charge(gomock.Any(), 250.0).
		Return(payment.Transaction{ID: "POS_1", Amount: 250, Channel: payment.ChannelPOS}, nil)

	tx, err := svc.Charge(context.Background(), 250)
	assert.NoError(t, err)
	assert.Equal(t, "POS_1", tx.ID)

	channel.EXPECT().
		Refund(gomock.Any(), "POS_1", 250.0).
		Return(nil)

	assert.NoError(t, svc.Refund(context.Background(), "POS_1", 250))
}

func TestService_SwapChannel(t *testing.T) {
	pos := payment.NewPOSTerminalWithRoll("front-desk-1", 0, approve)
	gw := payment.NewGatewayWithRoll("https://pay.example", 0, approve)

	svc := payment.NewService(pos, mocks.NewOtel())
	assert.Equal(t, payment.ChannelPOS, svc.CurrentChannel())
	assert.Contains(t, svc.Describe(context.Background()), "POS terminal")

	svc.SetChannel(gw)
	assert.Equal(t, payment.ChannelGateway, svc.CurrentChannel())
	assert.Contains(t, svc.Describe(context.Background()), "online gateway")
}

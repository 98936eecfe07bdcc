package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"oceanview/shared/failure"
	"oceanview/shared/timezone"
)

type gateway struct {
	baseURL     string
	declineRate float64
	roll        func() float64

	mu                sync.Mutex
	lastTransactionID string
	lastPaymentLink   string
}

// NewGateway returns the online payment gateway channel. Charges issue a
// payment link and settle synchronously, the simulated stand-in for the
// provider callback.
func NewGateway(baseURL string, declineRate float64) Channel {
	return &gateway{
		baseURL:     baseURL,
		declineRate: declineRate,
		roll:        rand.Float64,
	}
}

// NewGatewayWithRoll injects the random source, used by tests to force
// approvals and declines.
func NewGatewayWithRoll(baseURL string, declineRate float64, roll func() float64) Channel {
	return &gateway{
		baseURL:     baseURL,
		declineRate: declineRate,
		roll:        roll,
	}
}

func (g *gateway) Charge(_ context.Context, amount float64) (Transaction, error) {
	reference := uuid.NewString()
	link := fmt.Sprintf("%s/pay/%s", g.baseURL, reference)

	g.mu.Lock()
	g.lastPaymentLink = link
	g.mu.Unlock()

	log.Info().Str("paymentLink", link).Float64("amount", amount).Msg("payment link issued")

	if g.roll() < g.declineRate {
		log.Warn().Str("reference", reference).Float64("amount", amount).Msg("gateway charge declined")

		return Transaction{}, failure.PaymentDeclined("payment rejected by gateway") // nolint:wrapcheck
	}

	tx := Transaction{
		ID:        fmt.Sprintf("GW_%d", timezone.Now().UnixNano()),
		Amount:    amount,
		Channel:   ChannelGateway,
		CreatedAt: timezone.Now(),
	}

	g.mu.Lock()
	g.lastTransactionID = tx.ID
	g.mu.Unlock()

	log.Info().Str("transactionID", tx.ID).Float64("amount", amount).Msg("gateway charge settled")

	return tx, nil
}

func (g *gateway) Refund(_ context.Context, transactionID string, amount float64) error {
	log.Info().Str("transactionID", transactionID).Float64("amount", amount).Msg("gateway refund issued")

	return nil
}

func (g *gateway) Name() string {
	return ChannelGateway
}

func (g *gateway) Describe() string {
	g.mu.Lock()
	lastTx := g.lastTransactionID
	lastLink := g.lastPaymentLink
	g.mu.Unlock()

	if lastTx == "" {
		return fmt.Sprintf("online gateway at %s | no transactions yet", g.baseURL)
	}

	return fmt.Sprintf("online gateway at %s | last transaction %s | payment link %s", g.baseURL, lastTx, lastLink)
}

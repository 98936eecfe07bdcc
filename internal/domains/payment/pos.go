package payment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog/log"

	"oceanview/shared/failure"
	"oceanview/shared/timezone"
)

type posTerminal struct {
	terminalID  string
	declineRate float64
	roll        func() float64

	mu                sync.Mutex
	lastTransactionID string
}

// NewPOSTerminal returns the front-desk card terminal channel. declineRate is
// the simulated probability of the issuer declining a charge.
func NewPOSTerminal(terminalID string, declineRate float64) Channel {
	return &posTerminal{
		terminalID:  terminalID,
		declineRate: declineRate,
		roll:        rand.Float64,
	}
}

// NewPOSTerminalWithRoll injects the random source, used by tests to force
// approvals and declines.
func NewPOSTerminalWithRoll(terminalID string, declineRate float64, roll func() float64) Channel {
	return &posTerminal{
		terminalID:  terminalID,
		declineRate: declineRate,
		roll:        roll,
	}
}

func (p *posTerminal) Charge(_ context.Context, amount float64) (Transaction, error) {
	if p.roll() < p.declineRate {
		log.Warn().Str("terminal", p.terminalID).Float64("amount", amount).Msg("POS charge declined")

		return Transaction{}, failure.PaymentDeclined("card declined at terminal") // nolint:wrapcheck
	}

	tx := Transaction{
		ID:        fmt.Sprintf("POS_%d", timezone.Now().UnixNano()),
		Amount:    amount,
		Channel:   ChannelPOS,
		CreatedAt: timezone.Now(),
	}

	p.mu.Lock()
	p.lastTransactionID = tx.ID
	p.mu.Unlock()

	log.Info().Str("transactionID", tx.ID).Float64("amount", amount).Msg("POS charge approved")

	return tx, nil
}

func (p *posTerminal) Refund(_ context.Context, transactionID string, amount float64) error {
	log.Info().Str("transactionID", transactionID).Float64("amount", amount).Msg("POS refund issued")

	return nil
}

func (p *posTerminal) Name() string {
	return ChannelPOS
}

func (p *posTerminal) Describe() string {
	p.mu.Lock()
	lastTx := p.lastTransactionID
	p.mu.Unlock()

	if lastTx == "" {
		return fmt.Sprintf("POS terminal %s | no transactions yet", p.terminalID)
	}

	return fmt.Sprintf("POS terminal %s | last transaction %s", p.terminalID, lastTx)
}

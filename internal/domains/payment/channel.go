package payment

//go:generate go run go.uber.org/mock/mockgen -source=./channel.go -destination=./mocks/channel_mock.go -package=mocks

import (
	"context"
	"time"
)

const (
	ChannelPOS     = "pos"
	ChannelGateway = "gateway"
)

// Transaction is the record a channel hands back for a successful charge.
// The ID is the only handle needed for a later refund.
type Transaction struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Channel   string    `json:"channel"`
	CreatedAt time.Time `json:"created_at"`
}

// Channel is a payment processor the hotel can charge through. Amount
// validation happens before a channel is invoked, implementations only decide
// whether the charge goes through.
type Channel interface {
	Charge(ctx context.Context, amount float64) (Transaction, error)
	Refund(ctx context.Context, transactionID string, amount float64) error
	Name() string
	Describe() string
}

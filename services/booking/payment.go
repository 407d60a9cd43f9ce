package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentReceipt records the outcome of a simulated gateway call.
type PaymentReceipt struct {
	TransactionID string    `json:"transactionId"`
	BookingID     string    `json:"bookingId"`
	Amount        int       `json:"amount"`
	Currency      string    `json:"currency"`
	Kind          string    `json:"kind"` // "payment" or "refund"
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentGateway models the external payment processor. Both operations are
// single-attempt; there is no retry policy.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, bookingID string, amount int) (*PaymentReceipt, error)
	ProcessRefund(ctx context.Context, bookingID string, amount int) (*PaymentReceipt, error)
}

// SimulatedPaymentGateway fakes the processor with a fixed artificial delay.
// Calls must be awaited before success is reported to the caller.
type SimulatedPaymentGateway struct {
	Logger *zap.Logger
	Delay  time.Duration
}

// NewSimulatedPaymentGateway builds the simulator. A zero delay is allowed
// for tests.
func NewSimulatedPaymentGateway(logger *zap.Logger, delay time.Duration) *SimulatedPaymentGateway {
	return &SimulatedPaymentGateway{Logger: logger, Delay: delay}
}

func (g *SimulatedPaymentGateway) ProcessPayment(ctx context.Context, bookingID string, amount int) (*PaymentReceipt, error) {
	if amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}
	time.Sleep(g.Delay) // Simulate gateway latency

	receipt := &PaymentReceipt{
		TransactionID: "pi_" + uuid.New().String(),
		BookingID:     bookingID,
		Amount:        amount,
		Currency:      "TWD",
		Kind:          "payment",
		CreatedAt:     time.Now(),
	}
	g.Logger.Info("payment processed",
		zap.String("bookingId", bookingID),
		zap.String("transactionId", receipt.TransactionID),
		zap.Int("amount", amount))
	return receipt, nil
}

func (g *SimulatedPaymentGateway) ProcessRefund(ctx context.Context, bookingID string, amount int) (*PaymentReceipt, error) {
	if amount <= 0 {
		return nil, errors.New("invalid refund amount")
	}
	time.Sleep(g.Delay) // Simulate gateway latency

	receipt := &PaymentReceipt{
		TransactionID: "re_" + uuid.New().String(),
		BookingID:     bookingID,
		Amount:        amount,
		Currency:      "TWD",
		Kind:          "refund",
		CreatedAt:     time.Now(),
	}
	g.Logger.Info("refund processed",
		zap.String("bookingId", bookingID),
		zap.String("transactionId", receipt.TransactionID),
		zap.Int("amount", amount))
	return receipt, nil
}

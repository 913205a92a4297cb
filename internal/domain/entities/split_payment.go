package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

var ErrInvalidSplitPlan = errors.New("invalid split payment plan")

// SplitLeg is one (method, amount) pair of a split payment.
type SplitLeg struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// SplitPaymentPlan settles one order total with several methods.
//
// ReceivedAmount is the cash actually tendered; when zero it is taken to be
// the cash legs' amount. Only cash may be over-collected: the excess becomes
// change.
type SplitPaymentPlan struct {
	Total          decimal.Decimal `json:"total"`
	Legs           []SplitLeg      `json:"legs"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	Description    string          `json:"description,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	Customer       CustomerInfo    `json:"customer"`
}

// Validate aggregates every structural problem of the plan.
func (p SplitPaymentPlan) Validate() error {
	var err error
	if !p.Total.IsPositive() {
		err = multierr.Append(err, errors.New("total must be greater than zero"))
	}
	if !isCents(p.Total) {
		err = multierr.Append(err, ErrAmountPrecision)
	}
	if len(p.Legs) == 0 {
		err = multierr.Append(err, errors.New("at least one leg is required"))
	}
	for i, leg := range p.Legs {
		if !leg.Method.IsValid() {
			err = multierr.Append(err, fmt.Errorf("leg %d: unknown payment method %q", i, leg.Method))
		}
		if leg.Amount.IsNegative() {
			err = multierr.Append(err, fmt.Errorf("leg %d: amount must not be negative", i))
		}
		if !isCents(leg.Amount) {
			err = multierr.Append(err, fmt.Errorf("leg %d: %w", i, ErrAmountPrecision))
		}
	}
	if p.ReceivedAmount.IsNegative() {
		err = multierr.Append(err, errors.New("received amount must not be negative"))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSplitPlan, err)
	}
	return nil
}

func (p SplitPaymentPlan) TotalCollected() decimal.Decimal {
	sum := decimal.Zero
	for _, leg := range p.Legs {
		sum = sum.Add(leg.Amount)
	}
	return sum
}

// Remaining is total minus collected; negative means over-collection.
func (p SplitPaymentPlan) Remaining() decimal.Decimal {
	return p.Total.Sub(p.TotalCollected())
}

func (p SplitPaymentPlan) CashLegAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, leg := range p.Legs {
		if leg.Method.IsCash() {
			sum = sum.Add(leg.Amount)
		}
	}
	return sum
}

func (p SplitPaymentPlan) NonCashAmount() decimal.Decimal {
	return p.TotalCollected().Sub(p.CashLegAmount())
}

// CashPortion is the part of the order total the cash legs actually settle.
func (p SplitPaymentPlan) CashPortion() decimal.Decimal {
	applied := p.Total.Sub(p.NonCashAmount())
	if applied.IsNegative() {
		applied = decimal.Zero
	}
	return decimal.Min(p.CashLegAmount(), applied)
}

// Received is the cash tendered by the customer.
func (p SplitPaymentPlan) Received() decimal.Decimal {
	if p.ReceivedAmount.IsZero() {
		return p.CashLegAmount()
	}
	return p.ReceivedAmount
}

// Change is computed from the cash leg only, never from the order total.
func (p SplitPaymentPlan) Change() decimal.Decimal {
	if !p.CashLegAmount().IsPositive() {
		return decimal.Zero
	}
	change := p.Received().Sub(p.CashPortion())
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}

// LegRequests builds one payment request per leg with a positive amount.
// Cash legs are charged only for the portion they settle.
func (p SplitPaymentPlan) LegRequests() []PaymentRequest {
	cashLeft := p.CashPortion()
	reqs := make([]PaymentRequest, 0, len(p.Legs))
	for _, leg := range p.Legs {
		amount := leg.Amount
		if leg.Method.IsCash() {
			amount = decimal.Min(amount, cashLeft)
			cashLeft = cashLeft.Sub(amount)
		}
		if !amount.IsPositive() {
			continue
		}
		reqs = append(reqs, PaymentRequest{
			Amount:      amount,
			Method:      leg.Method,
			Description: p.Description,
			Customer:    p.Customer,
			Reference:   p.Reference,
		})
	}
	return reqs
}

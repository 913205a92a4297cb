package request

import (
	"fmt"
	"strings"

	"pdv_pagamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type SplitLegRequest struct {
	Method string `json:"method" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// SplitPaymentRequest is the body of the split endpoints. ReceivedAmount is
// the cash tendered and may be omitted.
type SplitPaymentRequest struct {
	Total          string            `json:"total" binding:"required"`
	Legs           []SplitLegRequest `json:"legs" binding:"required,min=1,dive"`
	ReceivedAmount string            `json:"received_amount"`
	Description    string            `json:"description"`
	Reference      string            `json:"reference"`
	Customer       CustomerRequest   `json:"customer"`
}

func (r SplitPaymentRequest) ToEntity() (entities.SplitPaymentPlan, error) {
	total, err := parseAmount(r.Total)
	if err != nil {
		return entities.SplitPaymentPlan{}, fmt.Errorf("total: %w", err)
	}
	received := decimal.Zero
	if strings.TrimSpace(r.ReceivedAmount) != "" {
		if received, err = parseAmount(r.ReceivedAmount); err != nil {
			return entities.SplitPaymentPlan{}, fmt.Errorf("received_amount: %w", err)
		}
	}

	legs := make([]entities.SplitLeg, 0, len(r.Legs))
	for i, l := range r.Legs {
		amount, err := parseAmount(l.Amount)
		if err != nil {
			return entities.SplitPaymentPlan{}, fmt.Errorf("legs[%d]: %w", i, err)
		}
		legs = append(legs, entities.SplitLeg{
			Method: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(l.Method))),
			Amount: amount,
		})
	}

	return entities.SplitPaymentPlan{
		Total:          total,
		Legs:           legs,
		ReceivedAmount: received,
		Description:    strings.TrimSpace(r.Description),
		Reference:      strings.TrimSpace(r.Reference),
		Customer:       r.Customer.ToEntity(),
	}, nil
}

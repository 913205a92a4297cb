package request

import (
	"errors"
	"fmt"
	"strings"

	"pdv_pagamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

type CustomerRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (c CustomerRequest) ToEntity() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:     strings.TrimSpace(c.Name),
		Document: strings.TrimSpace(c.Document),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
	}
}

// PaymentRequest is the body of POST /v1/payments. Amounts travel as decimal
// strings ("12.50") so no precision is lost on the way in.
type PaymentRequest struct {
	Amount       string          `json:"amount" binding:"required"`
	Method       string          `json:"method" binding:"required"`
	Description  string          `json:"description"`
	Installments int             `json:"installments"`
	Reference    string          `json:"reference"`
	Customer     CustomerRequest `json:"customer"`
}

func (r PaymentRequest) ToEntity() (entities.PaymentRequest, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	return entities.PaymentRequest{
		Amount:       amount,
		Method:       entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.Method))),
		Description:  strings.TrimSpace(r.Description),
		Installments: r.Installments,
		Reference:    strings.TrimSpace(r.Reference),
		Customer:     r.Customer.ToEntity(),
	}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return d, nil
}

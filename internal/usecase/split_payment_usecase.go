package usecase

import (
	"context"
	"errors"
	"fmt"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SplitSummary is the reconciled view of a split plan.
type SplitSummary struct {
	Total       decimal.Decimal `json:"total"`
	Collected   decimal.Decimal `json:"collected"`
	Remaining   decimal.Decimal `json:"remaining"`
	CashPortion decimal.Decimal `json:"cash_portion"`
	Received    decimal.Decimal `json:"received"`
	Change      decimal.Decimal `json:"change"`
}

// SplitPaymentResult lists the responses of every leg dispatched, in order.
// Paid is true only when every leg settled.
type SplitPaymentResult struct {
	Paid     bool                       `json:"paid"`
	Summary  SplitSummary               `json:"summary"`
	Payments []entities.PaymentResponse `json:"payments"`
}

type ISplitPaymentUseCase interface {
	Reconcile(plan entities.SplitPaymentPlan) (SplitSummary, error)
	Execute(ctx context.Context, plan entities.SplitPaymentPlan) (SplitPaymentResult, error)
}

type SplitPaymentUseCase struct {
	dispatcher IPaymentDispatcher
	log        zerolog.Logger
}

var _ ISplitPaymentUseCase = (*SplitPaymentUseCase)(nil)

func NewSplitPaymentUseCase(dispatcher IPaymentDispatcher) *SplitPaymentUseCase {
	return &SplitPaymentUseCase{dispatcher: dispatcher, log: logger.Component("split_payment")}
}

// Reconcile checks that the legs cover the total. Only cash may exceed what
// it settles; the excess becomes change.
func (u *SplitPaymentUseCase) Reconcile(plan entities.SplitPaymentPlan) (SplitSummary, error) {
	if err := plan.Validate(); err != nil {
		return SplitSummary{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	summary := SplitSummary{
		Total:       plan.Total,
		Collected:   plan.TotalCollected(),
		Remaining:   plan.Remaining(),
		CashPortion: plan.CashPortion(),
		Received:    plan.Received(),
		Change:      plan.Change(),
	}
	if summary.Remaining.IsPositive() {
		return summary, fmt.Errorf("%w: %s remaining", ErrInsufficientAmountCoverage, summary.Remaining.StringFixed(2))
	}
	if plan.NonCashAmount().GreaterThan(plan.Total) {
		return summary, fmt.Errorf("%w: non-cash legs exceed the total by %s", ErrInvalidRequest, plan.NonCashAmount().Sub(plan.Total).StringFixed(2))
	}
	if summary.Received.LessThan(summary.CashPortion) {
		return summary, fmt.Errorf("%w: received %s is less than the cash portion %s", ErrInsufficientAmountCoverage, summary.Received.StringFixed(2), summary.CashPortion.StringFixed(2))
	}
	return summary, nil
}

// Execute reconciles the plan and dispatches its legs in order. The first
// declined or failed leg stops execution; legs already dispatched stay in the
// ledger.
func (u *SplitPaymentUseCase) Execute(ctx context.Context, plan entities.SplitPaymentPlan) (SplitPaymentResult, error) {
	summary, err := u.Reconcile(plan)
	if err != nil {
		u.log.Warn().Err(err).Str("reference", plan.Reference).Msg("[payment][split] reconcile failed")
		return SplitPaymentResult{Summary: summary}, err
	}

	result := SplitPaymentResult{Summary: summary}
	for i, req := range plan.LegRequests() {
		resp, err := u.dispatcher.Dispatch(ctx, req)
		if err != nil {
			if errors.Is(err, ErrLedgerAppendFailed) {
				result.Payments = append(result.Payments, resp)
			}
			u.log.Warn().Err(err).Int("leg", i).Str("method", string(req.Method)).Msg("[payment][split] leg failed")
			return result, err
		}
		result.Payments = append(result.Payments, resp)
		if !resp.IsSettled() {
			u.log.Warn().Int("leg", i).Str("gateway_id", resp.GatewayID).Str("status", string(resp.Status)).Msg("[payment][split] leg declined")
			return result, &DispatchError{
				Kind:      ErrExternalGatewayDeclined,
				GatewayID: resp.GatewayID,
				Method:    string(req.Method),
			}
		}
	}
	result.Paid = true
	u.log.Info().Str("reference", plan.Reference).Int("legs", len(result.Payments)).Str("change", summary.Change.StringFixed(2)).Msg("[payment][split] paid")
	return result, nil
}

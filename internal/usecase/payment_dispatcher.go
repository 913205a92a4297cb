package usecase

import (
	"context"
	"errors"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	"pdv_pagamentos/internal/logger"
	"pdv_pagamentos/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// IPaymentDispatcher routes one payment request to the gateway that settles it.
//
// A recognized decline is returned as a declined response with a nil error.
// Every failure is a *DispatchError. ErrLedgerAppendFailed is the only failure
// that comes with a non-empty response: the payment settled and must not be
// dispatched again.
type IPaymentDispatcher interface {
	Dispatch(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error)
}

type DispatcherConfig struct {
	ExternalTimeout time.Duration
}

type PaymentDispatcher struct {
	registry   IGatewayRegistry
	ledger     interfaces.ILedgerRepository
	metrics    interfaces.IPaymentMetrics
	processors map[entities.GatewayType]gatewayProcessor
	now        func() time.Time
	log        zerolog.Logger
}

var _ IPaymentDispatcher = (*PaymentDispatcher)(nil)

func NewPaymentDispatcher(
	registry IGatewayRegistry,
	connections IBankConnectionUseCase,
	bank interfaces.IBankAPI,
	providers interfaces.IExternalGatewayProvider,
	ledger interfaces.ILedgerRepository,
	metrics interfaces.IPaymentMetrics,
	cfg DispatcherConfig,
) *PaymentDispatcher {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	processors := map[entities.GatewayType]gatewayProcessor{}
	for _, p := range []gatewayProcessor{
		localProcessor{},
		bankProcessor{connections: connections, bank: bank},
		externalProcessor{providers: providers, timeout: cfg.ExternalTimeout},
	} {
		processors[p.gatewayType()] = p
	}
	return &PaymentDispatcher{
		registry:   registry,
		ledger:     ledger,
		metrics:    metrics,
		processors: processors,
		now:        func() time.Time { return time.Now().UTC() },
		log:        logger.Component("dispatcher"),
	}
}

func (d *PaymentDispatcher) Dispatch(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error) {
	start := time.Now()
	method := string(req.Method)
	log := d.log.With().Str("method", method).Str("amount", req.Amount.StringFixed(2)).Str("reference", req.Reference).Logger()
	log.Info().Msg("[payment][dispatch] start")

	if err := req.Validate(); err != nil {
		return d.fail(log, "", newDispatchError(ErrInvalidRequest, method, "", err), start)
	}

	gateway, err := d.registry.SelectGateway(ctx, req.Method)
	if err != nil {
		return d.fail(log, "", asDispatchError(err, ErrTransportFailure, method, ""), start)
	}
	log = log.With().Str("gateway_id", gateway.ID).Str("gateway_type", string(gateway.Type)).Logger()

	processor, ok := d.processors[gateway.Type]
	if !ok {
		return d.fail(log, gateway.Type, newDispatchError(ErrUnsupportedGatewayType, method, gateway.ID, nil), start)
	}

	now := d.now()
	resp, err := processor.process(ctx, dispatchCall{Gateway: gateway, Request: req, Now: now})
	if err != nil {
		return d.fail(log, gateway.Type, asDispatchError(err, ErrTransportFailure, method, gateway.ID), start)
	}
	resp.Amount = req.Amount
	resp.Method = req.Method
	resp.GatewayID = gateway.ID
	resp.ProcessingDate = now

	entry := entities.NewLedgerEntry(resp, req, gateway, now)
	if err := d.ledger.Append(ctx, entry); err != nil {
		log.Error().Err(err).
			Str("payment_id", resp.ID).
			Str("transaction_id", resp.TransactionID).
			Str("status", string(resp.Status)).
			Msg("[payment][dispatch] ledger append failed after settlement")
		_, derr := d.fail(log, gateway.Type, newDispatchError(ErrLedgerAppendFailed, method, gateway.ID, err), start)
		return resp, derr
	}

	d.metrics.ObserveDispatch(string(gateway.Type), method, string(resp.Status), time.Since(start))
	log.Info().Str("payment_id", resp.ID).Str("status", string(resp.Status)).Str("transaction_id", resp.TransactionID).Msg("[payment][dispatch] done")
	return resp, nil
}

func (d *PaymentDispatcher) fail(log zerolog.Logger, gatewayType entities.GatewayType, err *DispatchError, start time.Time) (entities.PaymentResponse, error) {
	label := kindLabel(err)
	d.metrics.IncDispatchFailure(label)
	if gatewayType != "" {
		d.metrics.ObserveDispatch(string(gatewayType), err.Method, "error", time.Since(start))
	}
	ev := log.Warn()
	if errors.Is(err, ErrTransportFailure) {
		ev = log.Error()
	}
	ev.Err(err).Str("kind", label).Str("connection_id", err.ConnectionID).Msg("[payment][dispatch] failed")
	return entities.PaymentResponse{}, err
}

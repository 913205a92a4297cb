package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pdv_pagamentos/internal/domain/entities"
	mock_interfaces "pdv_pagamentos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type dispatcherDeps struct {
	gwRepo    *mock_interfaces.MockIPaymentGatewayRepository
	bank      *mock_interfaces.MockIBankAPI
	providers *mock_interfaces.MockIExternalGatewayProvider
	ledger    *mock_interfaces.MockILedgerRepository
	conns     *fakeConnectionRepo
	recorded  []entities.LedgerEntry
}

func newTestDispatcher(t *testing.T, ctrl *gomock.Controller, cfg DispatcherConfig, conns ...entities.BankConnection) (*PaymentDispatcher, *dispatcherDeps) {
	t.Helper()
	deps := &dispatcherDeps{
		gwRepo:    mock_interfaces.NewMockIPaymentGatewayRepository(ctrl),
		bank:      mock_interfaces.NewMockIBankAPI(ctrl),
		providers: mock_interfaces.NewMockIExternalGatewayProvider(ctrl),
		ledger:    mock_interfaces.NewMockILedgerRepository(ctrl),
		conns:     newFakeConnectionRepo(conns...),
	}
	deps.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.LedgerEntry) error {
		deps.recorded = append(deps.recorded, e)
		return nil
	}).AnyTimes()

	registry := NewGatewayRegistry(deps.gwRepo)
	connections := newTestBankConnectionUseCase(deps.conns, newFakeHandshakeStore(), deps.bank, registry)
	d := NewPaymentDispatcher(registry, connections, deps.bank, deps.providers, deps.ledger, nil, cfg)
	d.now = func() time.Time { return fixedNow }
	return d, deps
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestPaymentDispatcher_Local(t *testing.T) {
	t.Run("pix with configured key yields a BR Code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{})
		deps.gwRepo.EXPECT().List(gomock.Any()).Return([]entities.PaymentGateway{{
			ID: "local_pix", Enabled: true, Type: entities.GatewayTypeLocal,
			SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodPix},
			LocalConfig:      entities.LocalConfig{PixKey: "shop@pay", CompanyName: "Loja Exemplo", City: "Curitiba"},
		}}, nil)

		resp, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("50.00"), Method: entities.PaymentMethodPix, Reference: "order-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", resp.Status)
		}
		if !strings.HasPrefix(resp.QRCodePayload, "000201") || !strings.Contains(resp.QRCodePayload, "shop@pay") {
			t.Fatalf("unexpected qr payload %q", resp.QRCodePayload)
		}
		if !strings.HasPrefix(resp.AuthorizationCode, "LOC-") || len(resp.AuthorizationCode) != 12 {
			t.Fatalf("unexpected authorization code %q", resp.AuthorizationCode)
		}
		if string(resp.GatewayResponse) != `{"settlement":"manual"}` {
			t.Fatalf("unexpected gateway response %s", resp.GatewayResponse)
		}
		if resp.GatewayID != "local_pix" || !resp.ProcessingDate.Equal(fixedNow) || !resp.Amount.Equal(money("50")) {
			t.Fatalf("unexpected response %+v", resp)
		}
		if len(deps.recorded) != 1 || deps.recorded[0].ID != resp.ID || deps.recorded[0].Reference != "order-1" {
			t.Fatalf("expected one ledger entry for the response, got %+v", deps.recorded)
		}
	})

	t.Run("bank slip and wire transfer artifacts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{})
		gateways := []entities.PaymentGateway{{
			ID: "manual", Enabled: true, Type: entities.GatewayTypeLocal,
			SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodBankSlip, entities.PaymentMethodWireTransfer},
			LocalConfig: entities.LocalConfig{
				CompanyName:  "Loja Exemplo",
				SlipBankCode: "341",
				BankTransfer: entities.BankTransferInfo{BankName: "Itaú", Agency: "1234", Account: "56789-0"},
			},
		}}
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(gateways, nil).Times(2)

		slip, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("125.50"), Method: entities.PaymentMethodBankSlip})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(slip.BankSlipReference, "341.20260118.0000012550-") {
			t.Fatalf("unexpected slip reference %q", slip.BankSlipReference)
		}

		wire, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("10"), Method: entities.PaymentMethodWireTransfer})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wire.ManualNotes != "Transferência para Itaú | Agência 1234 | Conta 56789-0 | Titular Loja Exemplo" {
			t.Fatalf("unexpected notes %q", wire.ManualNotes)
		}
		if len(deps.recorded) != 2 {
			t.Fatalf("expected 2 ledger entries, got %d", len(deps.recorded))
		}
	})
}

func TestPaymentDispatcher_Failures(t *testing.T) {
	t.Run("no gateway leaves the ledger untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{})
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(registryFixture(), nil)

		_, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("10"), Method: entities.PaymentMethodBankSlip})
		if !errors.Is(err, ErrNoGatewayAvailable) {
			t.Fatalf("expected ErrNoGatewayAvailable, got %v", err)
		}
		if len(deps.recorded) != 0 {
			t.Fatalf("ledger must be unchanged")
		}
	})

	t.Run("invalid request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, _ := newTestDispatcher(t, ctrl, DispatcherConfig{})

		_, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: decimal.Zero, Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidRequest) || !errors.Is(err, entities.ErrNonPositiveAmount) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}

		_, err = d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("10.005"), Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidRequest) || !errors.Is(err, entities.ErrAmountPrecision) {
			t.Fatalf("expected sub-cent amount to be rejected, got %v", err)
		}
	})

	t.Run("ledger failure keeps the settled response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gwRepo := mock_interfaces.NewMockIPaymentGatewayRepository(ctrl)
		ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
		gwRepo.EXPECT().List(gomock.Any()).Return([]entities.PaymentGateway{{ID: "cash", Enabled: true, Type: entities.GatewayTypeLocal, SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodCash}}}, nil)
		ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

		d := NewPaymentDispatcher(NewGatewayRegistry(gwRepo), nil, nil, nil, ledger, nil, DispatcherConfig{})
		resp, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("1"), Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrLedgerAppendFailed) {
			t.Fatalf("expected ErrLedgerAppendFailed, got %v", err)
		}
		if errors.Is(err, ErrTransportFailure) {
			t.Fatalf("ledger failure must not be retryable: %v", err)
		}
		if resp.ID == "" || resp.TransactionID == "" || resp.Status != entities.PaymentStatusApproved || resp.GatewayID != "cash" {
			t.Fatalf("expected the settled response, got %+v", resp)
		}
	})
}

func bankGateways() []entities.PaymentGateway {
	return []entities.PaymentGateway{{
		ID: "bank_itau", Enabled: true, Type: entities.GatewayTypeBank, BankConnectionID: "c1",
		SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodPix},
	}}
}

func TestPaymentDispatcher_Bank(t *testing.T) {
	t.Run("expired token is refreshed before charging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{}, expiredConnection())
		var idempotencyKey string
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(bankGateways(), nil)
		deps.bank.EXPECT().RefreshToken(gomock.Any(), entities.BankProviderItau, "refresh-1").
			Return(entities.BankToken{AccessToken: "new-access", RefreshToken: "refresh-2", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
		deps.bank.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, conn entities.BankConnection, charge entities.BankCharge) (entities.BankChargeResult, error) {
				if conn.AccessToken != "new-access" {
					t.Fatalf("charge used stale token %q", conn.AccessToken)
				}
				if charge.Amount != "42.00" {
					t.Fatalf("unexpected amount %q", charge.Amount)
				}
				idempotencyKey = charge.IdempotencyKey
				return entities.BankChargeResult{Approved: true, TransactionID: "E123", AuthorizationCode: "AUT1"}, nil
			})

		resp, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("42"), Method: entities.PaymentMethodPix})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if idempotencyKey == "" || idempotencyKey != resp.ID {
			t.Fatalf("charge key %q must be the payment id %q", idempotencyKey, resp.ID)
		}
		if resp.Status != entities.PaymentStatusApproved || resp.TransactionID != "E123" {
			t.Fatalf("unexpected response %+v", resp)
		}
		stored := deps.conns.items["c1"]
		if !stored.ExpiresAt.After(fixedNow) || stored.RefreshToken != "refresh-2" {
			t.Fatalf("expected refreshed connection, got %+v", stored)
		}
		var detail map[string]any
		if err := json.Unmarshal(resp.GatewayResponse, &detail); err != nil || detail["connection_id"] != "c1" {
			t.Fatalf("unexpected gateway response %s", resp.GatewayResponse)
		}
	})

	t.Run("failed refresh surfaces expired connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{}, expiredConnection())
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(bankGateways(), nil).Times(2)
		deps.gwRepo.EXPECT().SetEnabled(gomock.Any(), "bank_itau", false).Return(nil)
		deps.bank.EXPECT().RefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.BankToken{}, errors.New("invalid_grant"))

		_, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("42"), Method: entities.PaymentMethodPix})
		if !errors.Is(err, ErrBankConnectionExpired) {
			t.Fatalf("expected ErrBankConnectionExpired, got %v", err)
		}
		var de *DispatchError
		if !errors.As(err, &de) || de.ConnectionID != "c1" || de.GatewayID != "bank_itau" {
			t.Fatalf("unexpected dispatch error %#v", err)
		}
		if len(deps.recorded) != 0 {
			t.Fatalf("nothing should be recorded")
		}
	})

	t.Run("missing connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{})
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(bankGateways(), nil)

		_, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("1"), Method: entities.PaymentMethodPix})
		if !errors.Is(err, ErrBankConnectionNotFound) {
			t.Fatalf("expected ErrBankConnectionNotFound, got %v", err)
		}
	})

	t.Run("decline is a response, transport error is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		conn := expiredConnection()
		conn.ExpiresAt = fixedNow.Add(time.Hour)
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{}, conn)
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(bankGateways(), nil).Times(2)
		gomock.InOrder(
			deps.bank.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.BankChargeResult{Approved: false, DeclineReason: "saldo insuficiente"}, nil),
			deps.bank.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.BankChargeResult{}, errors.New("i/o timeout")),
		)

		resp, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("5"), Method: entities.PaymentMethodPix})
		if err != nil || resp.Status != entities.PaymentStatusDeclined {
			t.Fatalf("expected declined response, got %+v err=%v", resp, err)
		}
		_, err = d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("5"), Method: entities.PaymentMethodPix})
		if !errors.Is(err, ErrTransportFailure) {
			t.Fatalf("expected ErrTransportFailure, got %v", err)
		}
		if len(deps.recorded) != 1 {
			t.Fatalf("expected only the declined attempt recorded, got %d", len(deps.recorded))
		}
	})
}

func externalGateways() []entities.PaymentGateway {
	return []entities.PaymentGateway{{
		ID: "mp", Enabled: true, Type: entities.GatewayTypeExternal, Provider: entities.ExternalProviderMercadoPago, TestMode: true,
		SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodCredit},
	}}
}

func TestPaymentDispatcher_External(t *testing.T) {
	creditReq := entities.PaymentRequest{
		Amount:       money("90.00"),
		Method:       entities.PaymentMethodCredit,
		Installments: 3,
		Reference:    "order-9",
		Customer:     entities.CustomerInfo{Name: "Maria Silva", Document: "123.456.789-09"},
	}

	t.Run("payload and status normalization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{})
		client := mock_interfaces.NewMockIPaymentGateway(ctrl)
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(externalGateways(), nil)
		deps.providers.EXPECT().ForGateway(gomock.Any()).Return(client, nil)
		client.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if m["transaction_amount"] != 90.0 || m["installments"] != 3.0 || m["external_reference"] != "order-9" || m["payment_method_id"] != "credit_card" {
				t.Fatalf("unexpected payload %s", payload)
			}
			payer := m["payer"].(map[string]any)
			if payer["email"] != sandboxPayerEmail || payer["first_name"] != "Maria" {
				t.Fatalf("unexpected payer %v", payer)
			}
			return "987", "rejected", json.RawMessage(`{"id":987,"status":"rejected"}`), nil
		})

		resp, err := d.Dispatch(context.Background(), creditReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Status != entities.PaymentStatusDeclined || resp.TransactionID != "987" {
			t.Fatalf("unexpected response %+v", resp)
		}
		if len(deps.recorded) != 1 {
			t.Fatalf("declined attempt must be recorded")
		}
	})

	t.Run("provider error classification", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{name: "bad request", err: errors.New(`{"message":"invalid","error":"bad_request","status":400}`), want: ErrPaymentGatewayBadRequest},
			{name: "unauthorized", err: errors.New(`{"error":"unauthorized","status":401}`), want: ErrPaymentGatewayUnauthorized},
			{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayBadRequest},
			{name: "status coder", err: statusErr(403), want: ErrPaymentGatewayUnauthorized},
			{name: "network", err: errors.New("dial tcp: connection refused"), want: ErrTransportFailure},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{})
				client := mock_interfaces.NewMockIPaymentGateway(ctrl)
				deps.gwRepo.EXPECT().List(gomock.Any()).Return(externalGateways(), nil)
				deps.providers.EXPECT().ForGateway(gomock.Any()).Return(client, nil)
				client.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

				_, err := d.Dispatch(context.Background(), creditReq)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("timeout is a transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{ExternalTimeout: 10 * time.Millisecond})
		client := mock_interfaces.NewMockIPaymentGateway(ctrl)
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(externalGateways(), nil)
		deps.providers.EXPECT().ForGateway(gomock.Any()).Return(client, nil)
		client.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ json.RawMessage) (string, string, json.RawMessage, error) {
			<-ctx.Done()
			return "", "", nil, ctx.Err()
		})

		_, err := d.Dispatch(context.Background(), creditReq)
		if !errors.Is(err, ErrTransportFailure) || !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected ErrTransportFailure, got %v", err)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d, deps := newTestDispatcher(t, ctrl, DispatcherConfig{})
		deps.gwRepo.EXPECT().List(gomock.Any()).Return(externalGateways(), nil)
		deps.providers.EXPECT().ForGateway(gomock.Any()).Return(nil, errors.New("missing access token"))

		_, err := d.Dispatch(context.Background(), creditReq)
		if !errors.Is(err, ErrInvalidGatewayConfig) {
			t.Fatalf("expected ErrInvalidGatewayConfig, got %v", err)
		}
	})
}

func TestPaymentDispatcher_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gwRepo := mock_interfaces.NewMockIPaymentGatewayRepository(ctrl)
	ledger := mock_interfaces.NewMockILedgerRepository(ctrl)
	metrics := mock_interfaces.NewMockIPaymentMetrics(ctrl)
	gwRepo.EXPECT().List(gomock.Any()).Return([]entities.PaymentGateway{{ID: "cash", Enabled: true, Type: entities.GatewayTypeLocal, SupportedMethods: []entities.PaymentMethod{entities.PaymentMethodCash}}}, nil).Times(2)
	ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	metrics.EXPECT().ObserveDispatch("local", "cash", "approved", gomock.Any())
	metrics.EXPECT().IncDispatchFailure("no_gateway_available")

	d := NewPaymentDispatcher(NewGatewayRegistry(gwRepo), nil, nil, nil, ledger, metrics, DispatcherConfig{})
	if _, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("3"), Method: entities.PaymentMethodCash}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.Dispatch(context.Background(), entities.PaymentRequest{Amount: money("3"), Method: entities.PaymentMethodDebit}); !errors.Is(err, ErrNoGatewayAvailable) {
		t.Fatalf("expected ErrNoGatewayAvailable, got %v", err)
	}
}

type statusErr int

func (e statusErr) Error() string   { return "provider error" }
func (e statusErr) HTTPStatus() int { return int(e) }

package entities

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSelectGateway_RegistrationOrder(t *testing.T) {
	gateways := []PaymentGateway{
		{ID: "mp", Enabled: true, Type: GatewayTypeExternal, Position: 3, SupportedMethods: []PaymentMethod{PaymentMethodPix, PaymentMethodCredit}},
		{ID: "local_pix", Enabled: true, Type: GatewayTypeLocal, Position: 1, SupportedMethods: []PaymentMethod{PaymentMethodPix}},
		{ID: "bank", Enabled: false, Type: GatewayTypeBank, Position: 0, SupportedMethods: []PaymentMethod{PaymentMethodPix}},
	}

	for i := 0; i < 5; i++ {
		got, ok := SelectGateway(gateways, PaymentMethodPix)
		if !ok || got.ID != "local_pix" {
			t.Fatalf("expected local_pix, got %q ok=%v", got.ID, ok)
		}
	}

	got, ok := SelectGateway(gateways, PaymentMethodCredit)
	if !ok || got.ID != "mp" {
		t.Fatalf("expected mp for credit, got %q", got.ID)
	}

	if _, ok := SelectGateway(gateways, PaymentMethodBankSlip); ok {
		t.Fatalf("expected no gateway for bank_slip")
	}

	if gateways[0].ID != "mp" {
		t.Fatalf("input slice must not be reordered")
	}
}

func TestSelectGateway_TieBreakByID(t *testing.T) {
	gateways := []PaymentGateway{
		{ID: "b", Enabled: true, SupportedMethods: []PaymentMethod{PaymentMethodCash}},
		{ID: "a", Enabled: true, SupportedMethods: []PaymentMethod{PaymentMethodCash}},
	}
	got, _ := SelectGateway(gateways, PaymentMethodCash)
	if got.ID != "a" {
		t.Fatalf("expected a, got %s", got.ID)
	}
}

func TestPaymentGateway_Validate(t *testing.T) {
	cases := []struct {
		name    string
		gateway PaymentGateway
		wantErr bool
	}{
		{name: "valid local", gateway: PaymentGateway{ID: "l", Type: GatewayTypeLocal, SupportedMethods: []PaymentMethod{PaymentMethodCash}}},
		{name: "missing id", gateway: PaymentGateway{Type: GatewayTypeLocal, SupportedMethods: []PaymentMethod{PaymentMethodCash}}, wantErr: true},
		{name: "unknown type", gateway: PaymentGateway{ID: "x", Type: "crypto", SupportedMethods: []PaymentMethod{PaymentMethodCash}}, wantErr: true},
		{name: "no methods", gateway: PaymentGateway{ID: "x", Type: GatewayTypeLocal}, wantErr: true},
		{name: "bank without connection", gateway: PaymentGateway{ID: "x", Type: GatewayTypeBank, SupportedMethods: []PaymentMethod{PaymentMethodPix}}, wantErr: true},
		{name: "external unknown provider", gateway: PaymentGateway{ID: "x", Type: GatewayTypeExternal, Provider: "paypal", SupportedMethods: []PaymentMethod{PaymentMethodCredit}}, wantErr: true},
		{name: "pix key at the limit", gateway: PaymentGateway{ID: "x", Type: GatewayTypeLocal, SupportedMethods: []PaymentMethod{PaymentMethodPix}, LocalConfig: LocalConfig{PixKey: strings.Repeat("k", 77)}}},
		{name: "pix key too long", gateway: PaymentGateway{ID: "x", Type: GatewayTypeLocal, SupportedMethods: []PaymentMethod{PaymentMethodPix}, LocalConfig: LocalConfig{PixKey: strings.Repeat("k", 78)}}, wantErr: true},
		{name: "valid square", gateway: PaymentGateway{ID: "x", Type: GatewayTypeExternal, Provider: ExternalProviderSquare, SupportedMethods: []PaymentMethod{PaymentMethodCredit}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.gateway.Validate()
			if tc.wantErr && !errors.Is(err, ErrInvalidGateway) {
				t.Fatalf("expected ErrInvalidGateway, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPaymentRequest_Validate(t *testing.T) {
	cases := []struct {
		name string
		req  PaymentRequest
		want error
	}{
		{name: "zero amount", req: PaymentRequest{Amount: decimal.Zero, Method: PaymentMethodPix}, want: ErrNonPositiveAmount},
		{name: "negative amount", req: PaymentRequest{Amount: decimal.NewFromInt(-1), Method: PaymentMethodPix}, want: ErrNonPositiveAmount},
		{name: "unknown method", req: PaymentRequest{Amount: decimal.NewFromInt(1), Method: "barter"}, want: ErrUnknownMethod},
		{name: "installments on debit", req: PaymentRequest{Amount: decimal.NewFromInt(1), Method: PaymentMethodDebit, Installments: 3}, want: ErrInvalidInstallments},
		{name: "sub-cent amount", req: PaymentRequest{Amount: decimal.RequireFromString("10.005"), Method: PaymentMethodPix}, want: ErrAmountPrecision},
		{name: "trailing zeros are fine", req: PaymentRequest{Amount: decimal.RequireFromString("10.500"), Method: PaymentMethodPix}},
		{name: "valid credit installments", req: PaymentRequest{Amount: decimal.NewFromInt(90), Method: PaymentMethodCredit, Installments: 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentMethod_Label(t *testing.T) {
	if PaymentMethodPix.Label() != "PIX" {
		t.Fatalf("unexpected label %q", PaymentMethodPix.Label())
	}
	if PaymentMethod("barter").Label() != "barter" {
		t.Fatalf("unknown methods fall back to their raw value")
	}
}

func TestPaymentGateway_IsUsable(t *testing.T) {
	methods := []PaymentMethod{PaymentMethodPix}
	if !(PaymentGateway{Enabled: true, Type: GatewayTypeLocal, SupportedMethods: methods}).IsUsable() {
		t.Fatalf("enabled local gateway must be usable")
	}
	if (PaymentGateway{Enabled: false, Type: GatewayTypeLocal, SupportedMethods: methods}).IsUsable() {
		t.Fatalf("disabled gateway must not be usable")
	}
	if (PaymentGateway{Enabled: true, Type: GatewayTypeBank, SupportedMethods: methods}).IsUsable() {
		t.Fatalf("bank gateway without connection must not be usable")
	}
	if _, ok := SelectGateway([]PaymentGateway{{ID: "b", Enabled: true, Type: GatewayTypeBank, SupportedMethods: methods}}, PaymentMethodPix); ok {
		t.Fatalf("unusable gateway must not be selected")
	}
}

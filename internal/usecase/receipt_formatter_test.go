package usecase

import (
	"strings"
	"testing"
	"time"

	"pdv_pagamentos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptFixture() entities.PaymentResponse {
	return entities.PaymentResponse{
		ID:                "p-1",
		Status:            entities.PaymentStatusApproved,
		Amount:            money("1234.56"),
		Method:            entities.PaymentMethodCredit,
		AuthorizationCode: "LOC-ABCDEF12",
		TransactionID:     "tx-1",
		ProcessingDate:    time.Date(2026, 1, 15, 13, 30, 5, 0, time.UTC),
	}
}

func TestReceiptFormatter_Render(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	f := ReceiptFormatter{CompanyName: "Loja Exemplo", Location: loc}
	customer := entities.CustomerInfo{Name: "Maria Silva", Document: "123.456.789-09"}

	out := f.Render(receiptFixture(), customer)

	for _, want := range []string{
		"Loja Exemplo\n",
		"Transação: tx-1\n",
		"Data: 15/01/2026 10:30:05\n",
		"Forma de pagamento: Cartão de Crédito\n",
		"Valor: R$ 1.234,56\n",
		"Status: Aprovado\n",
		"Autorização: LOC-ABCDEF12\n",
		"Cliente: Maria Silva\n",
		"CPF/CNPJ: 123.456.789-09\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Boleto")
	assert.Equal(t, out, f.Render(receiptFixture(), customer))
}

func TestRenderReceipt_OptionalSections(t *testing.T) {
	resp := receiptFixture()
	resp.Method = entities.PaymentMethodBankSlip
	resp.AuthorizationCode = ""
	resp.BankSlipReference = "341.20260118.0000012550-1"
	resp.ManualNotes = "conferir no extrato"

	out := RenderReceipt(resp, entities.CustomerInfo{})

	assert.True(t, strings.HasPrefix(out, "COMPROVANTE DE PAGAMENTO\n"))
	assert.Contains(t, out, "Data: 15/01/2026 13:30:05\n")
	assert.Contains(t, out, "Boleto: 341.20260118.0000012550-1\n")
	assert.Contains(t, out, "Observações: conferir no extrato\n")
	assert.NotContains(t, out, "Autorização")
	assert.NotContains(t, out, "Cliente")
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,50", FormatBRL(money("0.5")))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(money("1000000")))
}

package usecase

import (
	"strings"
	"time"

	"pdv_pagamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	receiptDateLayout = "02/01/2006 15:04:05"
	receiptRule       = "----------------------------------------"
)

var receiptStatusLabels = map[entities.PaymentStatus]string{
	entities.PaymentStatusPending:    "Pendente",
	entities.PaymentStatusProcessing: "Em processamento",
	entities.PaymentStatusApproved:   "Aprovado",
	entities.PaymentStatusDeclined:   "Recusado",
	entities.PaymentStatusRefunded:   "Estornado",
	entities.PaymentStatusCancelled:  "Cancelado",
}

// ReceiptFormatter renders the plain-text receipt of a payment. Output depends
// only on its inputs.
type ReceiptFormatter struct {
	CompanyName string
	Location    *time.Location
}

// RenderReceipt renders with UTC timestamps and no company header.
func RenderReceipt(resp entities.PaymentResponse, customer entities.CustomerInfo) string {
	return ReceiptFormatter{}.Render(resp, customer)
}

func (f ReceiptFormatter) Render(resp entities.PaymentResponse, customer entities.CustomerInfo) string {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}

	var b strings.Builder
	line := func(parts ...string) {
		for _, p := range parts {
			b.WriteString(p)
		}
		b.WriteByte('\n')
	}

	if name := strings.TrimSpace(f.CompanyName); name != "" {
		line(name)
	}
	line("COMPROVANTE DE PAGAMENTO")
	line(receiptRule)
	line("Transação: ", resp.TransactionID)
	line("Data: ", resp.ProcessingDate.In(loc).Format(receiptDateLayout))
	line("Forma de pagamento: ", resp.Method.Label())
	line("Valor: ", FormatBRL(resp.Amount))
	if status, ok := receiptStatusLabels[resp.Status]; ok {
		line("Status: ", status)
	}
	if resp.AuthorizationCode != "" {
		line("Autorização: ", resp.AuthorizationCode)
	}
	if resp.QRCodePayload != "" {
		line("PIX copia e cola:")
		line(resp.QRCodePayload)
	}
	if resp.BankSlipReference != "" {
		line("Boleto: ", resp.BankSlipReference)
	}
	if resp.ManualNotes != "" {
		line("Observações: ", resp.ManualNotes)
	}
	if customer.Name != "" {
		line("Cliente: ", customer.Name)
	}
	if customer.Document != "" {
		line("CPF/CNPJ: ", customer.Document)
	}
	line(receiptRule)
	return b.String()
}

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount as R$ 1.234,56.
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + brlPrinter.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}

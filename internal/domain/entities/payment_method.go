package entities

// PaymentMethod is how the customer settles a payment.
type PaymentMethod string

const (
	PaymentMethodCredit       PaymentMethod = "credit"
	PaymentMethodDebit        PaymentMethod = "debit"
	PaymentMethodPix          PaymentMethod = "pix"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankSlip     PaymentMethod = "bank_slip"
	PaymentMethodWireTransfer PaymentMethod = "wire_transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCredit:       "Cartão de Crédito",
	PaymentMethodDebit:        "Cartão de Débito",
	PaymentMethodPix:          "PIX",
	PaymentMethodCash:         "Dinheiro",
	PaymentMethodBankSlip:     "Boleto Bancário",
	PaymentMethodWireTransfer: "Transferência Bancária",
	PaymentMethodOther:        "Outro",
}

func (m PaymentMethod) IsValid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

// Label returns the pt-BR label printed on receipts.
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m PaymentMethod) IsCash() bool {
	return m == PaymentMethodCash
}

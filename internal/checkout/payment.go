package checkout

// PaymentMethod is the radio choice of the checkout dialog.
type PaymentMethod string

const (
	PaymentWallet PaymentMethod = "wallet"
	PaymentUPI    PaymentMethod = "upi"
	PaymentCash   PaymentMethod = "cash"
)

// DefaultPaymentMethod is preselected when the dialog first opens.
const DefaultPaymentMethod = PaymentWallet

type MethodOption struct {
	Value       PaymentMethod `json:"value"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
}

var Methods = []MethodOption{
	{Value: PaymentWallet, Label: "Wallet", Description: "Pay using wallet balance"},
	{Value: PaymentUPI, Label: "UPI / GPay", Description: "Pay via UPI apps"},
	{Value: PaymentCash, Label: "Cash", Description: "Pay at counter"},
}

func ParsePaymentMethod(v string) (PaymentMethod, error) {
	switch m := PaymentMethod(v); m {
	case PaymentWallet, PaymentUPI, PaymentCash:
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

// methodOf reads the session's stored choice; unset means the default.
func methodOf(stored string) PaymentMethod {
	if m, err := ParsePaymentMethod(stored); err == nil {
		return m
	}
	return DefaultPaymentMethod
}

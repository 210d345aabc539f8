package checkout

import (
	"fmt"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/money"
)

// Bill is the price breakdown shown under the cart and in the checkout
// dialog. Tax and Total are rounded independently from the subtotal, so
// Subtotal+Tax may differ from Total by one unit; clients show both as is.
type Bill struct {
	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	Total      int64 `json:"total"`
	TaxPercent int64 `json:"tax_percent"`

	SubtotalLabel string `json:"subtotal_label"`
	TaxName       string `json:"tax_name"`
	TaxLabel      string `json:"tax_label"`
	TotalLabel    string `json:"total_label"`
}

// NewBill multiplies in binary floating point, the way the browser client
// always has, and rounds half up.
func NewBill(subtotal, taxPercent int64) Bill {
	taxRate := float64(taxPercent) / 100
	grossRate := float64(100+taxPercent) / 100

	tax := money.RoundHalfUp(float64(subtotal) * taxRate)
	total := money.RoundHalfUp(float64(subtotal) * grossRate)

	return Bill{
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		TaxPercent:    taxPercent,
		SubtotalLabel: money.Format(subtotal),
		TaxName:       fmt.Sprintf("GST (%d%%)", taxPercent),
		TaxLabel:      money.Format(tax),
		TotalLabel:    money.Format(total),
	}
}

package email

import "fmt"

// SendPaymentReceipt sends a payment receipt to the paying user.
//
// The amount arrives in cents and is rendered as a dollar string in
// the template.
func (c *Client) SendPaymentReceipt(to, parcelID string, amountCents int64) error {
	data := map[string]string{
		"ParcelID": parcelID,
		"Amount":   fmt.Sprintf("%.2f", float64(amountCents)/100),
	}

	return c.SendEmail(
		to,
		"Your ProFast payment receipt",
		TemplateReceipt,
		data,
	)
}

package models

// PaymentOrder is the ephemeral order minted by the payment gateway for one
// booking attempt. Only the id travels back to the client; nothing is stored
// locally.
type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // currency minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// PaymentCallback carries the gateway's post-payment callback fields.
type PaymentCallback struct {
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Signature string `json:"signature"`
}

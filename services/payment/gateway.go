package payment

import (
	"fmt"

	"arenaslot/config"
	"arenaslot/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway mints payment orders with the external payment provider. The order
// id travels to the client, which completes the payment against the provider
// directly; the provider's callback is then checked by VerifySignature.
type Gateway interface {
	CreateOrder(amount int64, receipt string) (*models.PaymentOrder, error)
}

// RazorpayGateway implements Gateway against the Razorpay orders API.
type RazorpayGateway struct {
	client   *razorpay.Client
	currency string
}

// NewRazorpayGateway builds a gateway from the configured key pair.
func NewRazorpayGateway() *RazorpayGateway {
	return &RazorpayGateway{
		client:   razorpay.NewClient(config.AppConfig.RazorpayKey, config.AppConfig.RazorpaySecret),
		currency: "INR",
	}
}

// CreateOrder asks Razorpay for a new order. Amount is in currency minor
// units (paise).
func (g *RazorpayGateway) CreateOrder(amount int64, receipt string) (*models.PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": g.currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}
	return &models.PaymentOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: g.currency,
		Receipt:  receipt,
	}, nil
}

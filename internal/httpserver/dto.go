package httpserver

import (
	"strings"
	"time"

	"bookstore-api/internal/domain"
)

// censoredPayment is the only shape payment records leave the API in:
// whole card numbers never appear in a response.
type censoredPayment struct {
	NameOnCard     string         `json:"nameOnCard"`
	Expiry         string         `json:"expiry"`
	CardNumber     string         `json:"censoredCardNumber"`
	BillingAddress domain.Address `json:"billingAddress"`
}

type orderResponse struct {
	ID              int32           `json:"id"`
	ShippingAddress domain.Address  `json:"shippingAddress"`
	TrackingNumber  string          `json:"trackingNumber"`
	Status          string          `json:"status"`
	OrderDate       string          `json:"orderDate"`
	Payment         censoredPayment `json:"payment"`
	Lines           []orderLineResp `json:"lines"`
}

type orderLineResp struct {
	Book     domain.Book `json:"book"`
	Quantity int32       `json:"quantity"`
}

type profileResponse struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	ShippingAddress domain.Address  `json:"shippingAddress"`
	Payment         censoredPayment `json:"payment"`
}

func censorCardNumber(cardNumber string) string {
	lastDigits := cardNumber
	if len(lastDigits) > 4 {
		lastDigits = lastDigits[len(lastDigits)-4:]
	}
	return strings.Repeat("*", 12) + lastDigits
}

func toOrderResponse(o domain.Order) orderResponse {
	lines := make([]orderLineResp, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, orderLineResp{Book: line.Book, Quantity: line.Quantity})
	}
	return orderResponse{
		ID:              o.ID,
		ShippingAddress: o.ShippingAddress,
		TrackingNumber:  o.TrackingNumber,
		Status:          o.Status,
		OrderDate:       o.OrderDate.Format(time.DateOnly),
		Payment: censoredPayment{
			NameOnCard:     o.Payment.NameOnCard,
			Expiry:         o.Payment.Expiry,
			CardNumber:     censorCardNumber(o.Payment.CardNumber),
			BillingAddress: o.BillingAddress,
		},
		Lines: lines,
	}
}

func toProfileResponse(p domain.CustomerProfile) profileResponse {
	return profileResponse{
		Name:            p.Customer.Name,
		Email:           p.Customer.Email,
		ShippingAddress: p.ShippingAddress,
		Payment: censoredPayment{
			NameOnCard:     p.Payment.NameOnCard,
			Expiry:         p.Payment.Expiry,
			CardNumber:     censorCardNumber(p.Payment.CardNumber),
			BillingAddress: p.BillingAddress,
		},
	}
}

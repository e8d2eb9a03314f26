package domain

// Customer is a registered shopper. The default shipping and payment
// references are fixed at registration.
type Customer struct {
	ID                       int32  `json:"id"`
	Name                     string `json:"name"`
	Email                    string `json:"email"`
	PasswordHash             string `json:"-"`
	DefaultShippingAddressID int32  `json:"defaultShippingAddressId"`
	DefaultPaymentInfoID     int32  `json:"defaultPaymentInfoId"`
}

// CustomerProfile is the joined account view: the customer plus their
// default shipping address and default payment record with its billing
// address.
type CustomerProfile struct {
	Customer        Customer    `json:"customer"`
	ShippingAddress Address     `json:"shippingAddress"`
	Payment         PaymentInfo `json:"payment"`
	BillingAddress  Address     `json:"billingAddress"`
}

// Owner is a store administrator account.
type Owner struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

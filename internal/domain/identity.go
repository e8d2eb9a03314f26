package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a stored, deduplicated address row.
type Address struct {
	ID            int32  `json:"id"`
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	Province      string `json:"province"`
}

// AddressInput is address content without an identity. Two inputs with
// identical field values resolve to the same stored row.
type AddressInput struct {
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	Province      string `json:"province"`
}

// PaymentInfo is a stored payment record. Expiry is kept as its wire
// string; CardNumber must never leave the API uncensored.
type PaymentInfo struct {
	ID               int32  `json:"id"`
	NameOnCard       string `json:"nameOnCard"`
	Expiry           string `json:"expiry"`
	CardNumber       string `json:"-"`
	CVV              string `json:"-"`
	BillingAddressID int32  `json:"billingAddressId"`
}

// PaymentInfoInput is payment content without an identity. Dedup matches
// on every field including the resolved billing address.
type PaymentInfoInput struct {
	NameOnCard     string       `json:"nameOnCard"`
	Expiry         Expiry       `json:"expiry"`
	CardNumber     string       `json:"cardNumber"`
	CVV            string       `json:"cvv"`
	BillingAddress AddressInput `json:"billingAddress"`
}

// Expiry is a parsed card expiry.
type Expiry struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ParseExpiry parses "MM/YY": exactly two slash-delimited fields, month in
// [1,12], two-digit year >= 21. No century handling.
func ParseExpiry(s string) (Expiry, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Expiry{}, &ValidationError{Field: "expiry", Reason: "want MM/YY"}
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return Expiry{}, &ValidationError{Field: "expiry", Reason: "month out of range"}
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 21 {
		return Expiry{}, &ValidationError{Field: "expiry", Reason: "year out of range"}
	}
	return Expiry{Month: month, Year: year}, nil
}

func (e Expiry) String() string {
	return fmt.Sprintf("%d/%d", e.Month, e.Year)
}

package domain

// CartLine is one (isbn, quantity) entry of a customer's cart. A stored
// quantity is always positive; zero means the line does not exist.
type CartLine struct {
	ISBN     int32 `json:"isbn"`
	Quantity int32 `json:"quantity"`
}

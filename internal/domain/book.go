package domain

// Book is a catalog entry. ISBN is the natural key. Prices are cents and
// royalties are basis points of the sale price.
type Book struct {
	ISBN             int32  `json:"isbn"`
	Title            string `json:"title"`
	AuthorName       string `json:"authorName"`
	Genre            string `json:"genre"`
	PublisherID      int32  `json:"publisherId"`
	NumPages         int32  `json:"numPages"`
	PriceCents       int64  `json:"priceCents"`
	RoyaltyBP        int32  `json:"royaltyBasisPoints"`
	ReorderThreshold int32  `json:"reorderThreshold"`
	Stock            int32  `json:"stock"`
	Discontinued     bool   `json:"discontinued"`
}

type Publisher struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	BankAccount string `json:"-"`
}

package domain

// PaymentMethod is how the buyer pays for the order.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// BuyerData is the in-progress checkout draft. Defaults: card payment,
// everything else empty.
type BuyerData struct {
	Payment PaymentMethod `json:"payment"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
}

// OrderRequest is the wire shape POSTed to the order endpoint. Items carries
// every cart id; nil-price items contribute 0 to Total.
type OrderRequest struct {
	Payment PaymentMethod `json:"payment"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
	Total   int           `json:"total"`
	Items   []string      `json:"items"`
}

// OrderConfirmation is the server response for a created order.
type OrderConfirmation struct {
	ID    string `json:"id"`
	Total int    `json:"total"`
}

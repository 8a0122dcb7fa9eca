package domain

// Category is one of the fixed product categories served by the shop API.
// Values are the Russian labels the API uses on the wire.
type Category string

const (
	CategorySoftSkill  Category = "софт-скил"
	CategoryHardSkill  Category = "хард-скил"
	CategoryOther      Category = "другое"
	CategoryAdditional Category = "дополнительное"
	CategoryButton     Category = "кнопка"
)

// Product is a single catalog entry. Products are immutable once loaded;
// the catalog store owns the canonical list.
//
// Price is nil for items the shop gives away ("Бесценно"). A nil-price item
// can sit in the cart but contributes nothing to the total and cannot be
// purchased on its own.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Price       *int     `json:"price"`
}

// Purchasable reports whether the product has a real price.
func (p Product) Purchasable() bool { return p.Price != nil }

// PriceValue returns the price, or 0 for nil-price items.
func (p Product) PriceValue() int {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// ProductList is the catalog fetch response shape.
type ProductList struct {
	Total int       `json:"total"`
	Items []Product `json:"items"`
}

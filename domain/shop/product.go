// Package shop provides the domain types for the storefront session:
// product records, the order draft, validation rules, and the event
// vocabulary spoken over the session bus.
package shop

// ProductRecord is a single catalog item as delivered by the order API.
// A nil Price marks an item that is not for sale.
type ProductRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
}

// PriceOrZero returns the record's price, treating the not-for-sale
// sentinel as zero so summation never fails on it.
func (r ProductRecord) PriceOrZero() float64 {
	if r.Price == nil {
		return 0
	}
	return *r.Price
}

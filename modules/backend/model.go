// Package backend is the embedded order API: the fiber server the
// storefront's HTTP client talks to, backed by a gorm/sqlite store
// with an optional Redis cache on catalog reads.
package backend

import "time"

// Product is a catalog row. A nil Price marks an item that is not for
// sale.
type Product struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Image       string
	Category    string
	Price       *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order is an accepted order row. Items holds the JSON-encoded id
// list.
type Order struct {
	ID        string `gorm:"primaryKey"`
	Payment   string
	Address   string
	Email     string
	Phone     string
	Total     float64
	Items     string
	CreatedAt time.Time
}

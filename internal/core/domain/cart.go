package domain

// LineItem is a catalog product resolved against a cart quantity.
// Derived on demand, never stored on its own.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// DeriveLineItems joins cart contents (item id -> quantity) against the
// catalog, in catalog order. Entries whose id is unknown to the catalog
// are dropped.
func DeriveLineItems(catalog *Catalog, cart map[string]int) []LineItem {
	items := make([]LineItem, 0, len(cart))
	for _, p := range catalog.Products() {
		qty, ok := cart[p.ID]
		if !ok || qty <= 0 {
			continue
		}
		items = append(items, LineItem{
			ID:        p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  qty,
		})
	}
	return items
}

// TotalQuantity sums quantities across line items.
func TotalQuantity(items []LineItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

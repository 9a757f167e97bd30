package domain

// Product is a purchasable catalog item. Products are fixed at process
// start and never mutated.
type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	UnitPrice   float64 `json:"unit_price" yaml:"unit_price"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string  `json:"image,omitempty" yaml:"image,omitempty"`
}

// Catalog is a read-only, ordered collection of products.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func NewCatalog(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Products returns all catalog items in definition order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Find looks up a product by id.
func (c *Catalog) Find(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

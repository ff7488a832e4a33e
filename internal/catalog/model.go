package catalog

type Product struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
	Stock int     `json:"stock" yaml:"stock"`
}

// Available reports whether at least one unit is in stock.
func (p Product) Available() bool {
	return p.Stock > 0
}

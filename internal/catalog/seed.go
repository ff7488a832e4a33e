package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Products []Product `yaml:"products"`
}

// LoadSeed registers every product listed in a YAML document of the form
//
//	products:
//	  - {id: "101", name: Laptop, price: 999.99, stock: 10}
//
// and returns how many were loaded. Loading stops at the first invalid entry.
func (s *Service) LoadSeed(r io.Reader) (int, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, fmt.Errorf("decode seed: %w", err)
	}

	for i, p := range f.Products {
		if _, err := s.AddProduct(p.ID, p.Name, p.Price, p.Stock); err != nil {
			return i, fmt.Errorf("seed product %d (%q): %w", i, p.ID, err)
		}
	}
	return len(f.Products), nil
}

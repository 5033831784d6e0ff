package domain

// Product is an orderable milk type. Products are reference data: built once
// when the catalog loads and never mutated afterwards.
type Product struct {
	ID            string
	Name          string
	PricePerLiter float64
}

package service

import (
	"fmt"
	"math"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/shopspring/decimal"
)

// validateLiters rejects negative, NaN and infinite quantities.
func validateLiters(productID string, morning, evening float64) error {
	for _, v := range []float64{morning, evening} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s: %v liters: %w", productID, v, ErrInvalidQuantity)
		}
	}
	return nil
}

func requireProduct(c *catalog.Catalog, productID string) (domain.Product, error) {
	p, ok := c.Lookup(productID)
	if !ok {
		return domain.Product{}, fmt.Errorf("%q: %w", productID, ErrUnknownProduct)
	}
	return p, nil
}

// lineAmount prices liters at the product rate without float drift.
func lineAmount(liters, pricePerLiter float64) decimal.Decimal {
	return decimal.NewFromFloat(liters).Mul(decimal.NewFromFloat(pricePerLiter))
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func overridesByProduct(list []domain.Override) map[string]domain.Override {
	m := make(map[string]domain.Override, len(list))
	for _, o := range list {
		m[o.ProductID] = o
	}
	return m
}

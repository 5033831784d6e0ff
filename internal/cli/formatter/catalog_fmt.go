package formatter

import "github.com/alexanderramin/milkround/internal/domain"

// FormatCatalog lists products in catalog order.
func FormatCatalog(products []domain.Product) string {
	if len(products) == 0 {
		return Dim("No products in catalog.") + "\n"
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{Dim(p.ID), Bold(p.Name), FormatPrice(p.PricePerLiter)})
	}
	return Header("Catalog") + "\n" + RenderTableAligned([]string{"ID", "PRODUCT", "PRICE"}, rows, []bool{false, false, true})
}

package cli

import (
	"fmt"
	"strings"
)

// resolveProductID resolves a product identifier which can be:
//   - A catalog ID ("cow")
//   - A product name, case-insensitive ("Cow Milk")
//   - A unique prefix of either ("buf")
func resolveProductID(app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if app.Catalog.Has(input) {
		return input, nil
	}

	lower := strings.ToLower(input)
	var matches []string
	for _, p := range app.Catalog.Products() {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
		if lower != "" && (strings.HasPrefix(strings.ToLower(p.ID), lower) || strings.HasPrefix(strings.ToLower(p.Name), lower)) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("unknown product %q (see `milkround catalog`)", input)
	default:
		return "", fmt.Errorf("product %q is ambiguous: %s", input, strings.Join(matches, ", "))
	}
}

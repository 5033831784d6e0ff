package catalog

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValidAndOrdered(t *testing.T) {
	c := Default()
	products := c.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "cow", products[0].ID)
	assert.Equal(t, 0, c.Index("cow"))
	assert.Equal(t, -1, c.Index("goat"))
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]domain.Product{
		{ID: "cow", Name: "Cow", PricePerLiter: 60},
		{ID: "cow", Name: "Cow again", PricePerLiter: 65},
	})
	assert.ErrorIs(t, err, ErrDuplicateProduct)
}

func TestNew_RejectsInvalidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]domain.Product{{ID: "cow", Name: "Cow", PricePerLiter: tt.price}})
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestParse_RejectsNonFinitePrice(t *testing.T) {
	for _, price := range []string{".nan", ".inf", "-.inf"} {
		t.Run(price, func(t *testing.T) {
			doc := []byte("products:\n  - id: cow\n    name: Cow Milk\n    price_per_liter: " + price + "\n")
			_, err := Parse(doc)
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestProducts_ReturnsCopy(t *testing.T) {
	c := Default()
	ps := c.Products()
	ps[0].PricePerLiter = 1

	p, ok := c.Lookup("cow")
	require.True(t, ok)
	assert.Equal(t, 60.0, p.PricePerLiter, "catalog must stay immutable")
}

func TestParse_YAML(t *testing.T) {
	doc := []byte(`
products:
  - id: buffalo
    name: Buffalo Milk
    price_per_liter: 60
  - id: cow
    name: Cow Milk
    price_per_liter: 80
`)
	c, err := Parse(doc)
	require.NoError(t, err)
	products := c.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "buffalo", products[0].ID)
	assert.Equal(t, 80.0, products[1].PricePerLiter)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte("products: []\n"))
	assert.Error(t, err)
}

func TestLoad_FileAndDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - id: cow\n    name: Cow\n    price_per_liter: 80\n"), 0644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.True(t, c.Has("cow"))
	assert.False(t, c.Has("buffalo"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

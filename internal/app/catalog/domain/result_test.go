package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltersMeta_Summary(t *testing.T) {
	assert.Equal(t, "1 item • 0 em estoque imediato", FiltersMeta{Total: 1}.Summary())
	assert.Equal(t, "14 itens • 12 em estoque imediato", FiltersMeta{Total: 14, InStock: 12}.Summary())
	assert.Equal(t, "0 itens • 0 em estoque imediato", FiltersMeta{}.Summary())
}

func TestResultPage_WireFormat(t *testing.T) {
	page := ResultPage{
		Products: []Product{{ID: "prd-pet-001", Name: "Ração", Category: CategoryPet, Tags: []string{"ração"}}},
		Meta: FiltersMeta{
			Total:      1,
			InStock:    1,
			PriceRange: PriceRange{Min: 10, Max: 10},
			Page:       1,
			PageSize:   12,
		},
	}

	raw, err := json.Marshal(page)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))

	meta := generic["meta"].(map[string]any)
	assert.Contains(t, meta, "inStock")
	assert.Contains(t, meta, "priceRange")
	assert.Contains(t, meta, "pageSize")
	assert.Contains(t, meta, "hasMore")

	product := generic["products"].([]any)[0].(map[string]any)
	assert.Equal(t, "pet", product["category"])
	assert.Contains(t, product, "inStock")
	assert.NotContains(t, product, "releaseDate")
}

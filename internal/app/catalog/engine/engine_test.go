package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

func product(id string, category domain.Category, price float64, inStock bool) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Produto " + id,
		Slug:     id,
		Category: category,
		Price:    price,
		InStock:  inStock,
		Tags:     []string{},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func stateWith(mutate func(m *domain.FilterModel)) domain.FilterState {
	m := domain.NewFilterModel(domain.DefaultFilterState())
	mutate(m)
	return m.State()
}

func TestEngine_JardimPaginationScenario(t *testing.T) {
	var catalog []domain.Product
	for i := 1; i <= 14; i++ {
		catalog = append(catalog, product(fmt.Sprintf("jard-%03d", i), domain.CategoryJardim, float64(10*i), true))
	}
	catalog = append(catalog, product("pet-001", domain.CategoryPet, 50, true))

	e := NewDefault()

	first := e.Run(catalog, stateWith(func(m *domain.FilterModel) {
		m.SetCategory(domain.CategoryJardim)
	}))
	assert.Len(t, first.Products, 12)
	assert.Equal(t, 14, first.Meta.Total)
	assert.True(t, first.Meta.HasMore)

	second := e.Run(catalog, stateWith(func(m *domain.FilterModel) {
		m.SetCategory(domain.CategoryJardim)
		m.SetPage(2)
	}))
	assert.Len(t, second.Products, 2)
	assert.Equal(t, 14, second.Meta.Total)
	assert.False(t, second.Meta.HasMore)
	assert.Equal(t, []string{"jard-013", "jard-014"}, ids(second.Products))
}

func TestEngine_KitJardimRanksNameMatchFirst(t *testing.T) {
	tagOnly := product("jard-002", domain.CategoryJardim, 59.9, true)
	tagOnly.Name = "Mangueira Flexível 15m"
	tagOnly.Description = "Mangueira com esguicho de 7 jatos"
	tagOnly.Tags = []string{"kit", "jardim"}

	kit := product("jard-001", domain.CategoryJardim, 299, true)
	kit.Name = "Kit Ferramentas Jardim Pro 8 Peças"
	kit.Description = "Conjunto completo em aço carbono"
	kit.Tags = []string{"ferramentas", "kit"}

	catalog := []domain.Product{tagOnly, kit, product("pet-001", domain.CategoryPet, 10, true)}
	e := NewDefault()

	assert.Equal(t, 6, e.Score(kit, Tokenize("kit jardim")))
	assert.Equal(t, 2, e.Score(tagOnly, Tokenize("kit jardim")))

	got := e.Query(catalog, stateWith(func(m *domain.FilterModel) {
		m.SetSearch("kit jardim")
	}))
	assert.Equal(t, []string{"jard-001", "jard-002"}, ids(got))
}

func TestEngine_PriceAndStockScenario(t *testing.T) {
	catalog := []domain.Product{
		product("a-1", domain.CategoryAgro, 100, true),
		product("a-2", domain.CategoryAgro, 150, true),
		product("a-3", domain.CategoryAgro, 200, false),
		product("p-1", domain.CategoryPet, 250, true),
		product("p-2", domain.CategoryPet, 300, true),
		product("p-3", domain.CategoryPet, 120, false),
		product("j-1", domain.CategoryJardim, 180, true),
		product("j-2", domain.CategoryJardim, 99.99, true),
		product("j-3", domain.CategoryJardim, 300.01, true),
	}

	page := NewDefault().Run(catalog, stateWith(func(m *domain.FilterModel) {
		m.SetPriceRange(domain.Float(100), domain.Float(300))
		m.SetInStockOnly(true)
	}))

	assert.Equal(t, 5, page.Meta.Total)
	assert.Equal(t, 5, page.Meta.InStock)
	assert.Equal(t, domain.PriceRange{Min: 100, Max: 300}, page.Meta.PriceRange)
	assert.False(t, page.Meta.HasMore)
}

func TestEngine_AndAcrossTokens(t *testing.T) {
	onlyA := product("x-1", domain.CategoryPet, 1, true)
	onlyA.Name = "Coleira alfa"

	onlyB := product("x-2", domain.CategoryPet, 1, true)
	onlyB.Description = "modelo beta"

	both := product("x-3", domain.CategoryPet, 1, true)
	both.Name = "Alfa"
	both.Tags = []string{"BETA"}

	catalog := []domain.Product{onlyA, onlyB, both}
	e := NewDefault()

	search := func(q string) []string {
		return ids(e.Query(catalog, stateWith(func(m *domain.FilterModel) { m.SetSearch(q) })))
	}

	assert.ElementsMatch(t, []string{"x-1", "x-3"}, search("alfa"))
	assert.ElementsMatch(t, []string{"x-2", "x-3"}, search("beta"))
	assert.Equal(t, []string{"x-3"}, search("ALFA   beta"))
	assert.Empty(t, search("alfa gama"))
}

func TestEngine_Sorts(t *testing.T) {
	release := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	a := product("pet-003", domain.CategoryPet, 30, true)
	a.Rating = 4.5
	b := product("pet-001", domain.CategoryPet, 10, true)
	b.Rating = 4.9
	b.ReleaseDate = &release
	c := product("pet-010", domain.CategoryPet, 20, true)
	c.Rating = 4.5
	c.Highlight = true

	catalog := []domain.Product{a, b, c}
	e := NewDefault()

	tests := []struct {
		sort domain.SortMode
		want []string
	}{
		{domain.SortPriceAsc, []string{"pet-001", "pet-010", "pet-003"}},
		{domain.SortPriceDesc, []string{"pet-003", "pet-010", "pet-001"}},
		{domain.SortRatingDesc, []string{"pet-001", "pet-003", "pet-010"}},
		{domain.SortNewest, []string{"pet-001", "pet-010", "pet-003"}},
		{domain.SortRelevance, []string{"pet-010", "pet-003", "pet-001"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := e.Query(catalog, stateWith(func(m *domain.FilterModel) { m.SetSort(tt.sort) }))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestEngine_QueryDoesNotMutateCatalog(t *testing.T) {
	catalog := []domain.Product{
		product("b", domain.CategoryPet, 2, true),
		product("a", domain.CategoryPet, 1, true),
	}

	_ = NewDefault().Query(catalog, stateWith(func(m *domain.FilterModel) { m.SetSort(domain.SortPriceAsc) }))

	assert.Equal(t, []string{"b", "a"}, ids(catalog))
}

func TestEngine_CustomWeights(t *testing.T) {
	p := product("x", domain.CategoryPet, 1, true)
	p.Name = "ração"
	p.Description = "premium"
	p.Tags = []string{"cães"}

	e := New(Weights{Name: 10, Description: 5, Tag: 2, Highlight: 0})

	assert.Equal(t, 17, e.Score(p, Tokenize("ração premium cães")))
	assert.Equal(t, 0, e.Score(p, nil))
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.Error(t, Weights{Name: 2, Description: 2, Tag: 1}.Validate())
	assert.Error(t, Weights{Name: 3, Description: 1, Tag: 1}.Validate())
	assert.Error(t, Weights{Name: 3, Description: 2, Tag: 0}.Validate())
	assert.Error(t, Weights{Name: 3, Description: 2, Tag: 1, Highlight: -1}.Validate())
}

func TestNewestKey(t *testing.T) {
	release := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		p    domain.Product
		want int64
	}{
		{"release date wins", domain.Product{ID: "pet-001", ReleaseDate: &release}, release.UnixMilli()},
		{"trailing digits", domain.Product{ID: "pisc-005"}, 5},
		{"no digits", domain.Product{ID: "kit"}, 0},
		{"digits not trailing", domain.Product{ID: "v2-kit"}, 0},
		{"overflowing digits", domain.Product{ID: "x-99999999999999999999999"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewestKey(tt.p))
		})
	}
}

// genCatalog draws a small catalog whose text fields come from a tiny vocabulary,
// so searches hit often and relevance ties are common.
func genCatalog(t *rapid.T) []domain.Product {
	words := []string{"kit", "jardim", "ração", "cloro", "pet", "agro"}
	categories := []domain.Category{domain.CategoryPet, domain.CategoryPiscina, domain.CategoryJardim, domain.CategoryAgro}

	n := rapid.IntRange(0, 30).Draw(t, "n")
	catalog := make([]domain.Product, n)
	for i := range catalog {
		catalog[i] = domain.Product{
			ID:          fmt.Sprintf("prd-%03d", i),
			Slug:        fmt.Sprintf("prd-%03d", i),
			Name:        rapid.SampledFrom(words).Draw(t, "name"),
			Description: rapid.SampledFrom(words).Draw(t, "description"),
			Tags:        rapid.SliceOfN(rapid.SampledFrom(words), 0, 2).Draw(t, "tags"),
			Category:    rapid.SampledFrom(categories).Draw(t, "category"),
			Price:       float64(rapid.IntRange(1, 500).Draw(t, "price")),
			Rating:      float64(rapid.IntRange(0, 5).Draw(t, "rating")),
			InStock:     rapid.Bool().Draw(t, "inStock"),
			Highlight:   rapid.Bool().Draw(t, "highlight"),
		}
	}
	return catalog
}

func TestPaginationTotalityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "n")
		pageSize := rapid.IntRange(1, 50).Draw(t, "pageSize")

		filtered := make([]domain.Product, n)
		for i := range filtered {
			filtered[i] = domain.Product{ID: fmt.Sprintf("p-%d", i)}
		}

		lastPage := (n + pageSize - 1) / pageSize
		if lastPage == 0 {
			lastPage = 1
		}

		sum := 0
		for page := 1; page <= lastPage; page++ {
			slice := Paginate(filtered, page, pageSize)
			meta := Meta(filtered, page, pageSize)
			sum += len(slice)

			require.Equal(t, page != lastPage, meta.HasMore, "page %d", page)
			if page == lastPage {
				want := n % pageSize
				if want == 0 && n > 0 {
					want = pageSize
				}
				require.Len(t, slice, want)
			} else {
				require.Len(t, slice, pageSize)
			}
		}
		require.Equal(t, n, sum)

		beyond := Paginate(filtered, lastPage+1, pageSize)
		require.Empty(t, beyond)
		require.False(t, Meta(filtered, lastPage+1, pageSize).HasMore)
	})
}

func TestAndTokenSearchProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		catalog := genCatalog(t)
		a := rapid.SampledFrom([]string{"kit", "jard", "ração", "clo", "pe"}).Draw(t, "a")
		b := rapid.SampledFrom([]string{"agro", "im", "ra", "cloro", "t"}).Draw(t, "b")

		e := NewDefault()
		query := func(search string) map[string]bool {
			set := map[string]bool{}
			for _, p := range e.Query(catalog, stateWith(func(m *domain.FilterModel) { m.SetSearch(search) })) {
				set[p.ID] = true
			}
			return set
		}

		onlyA, onlyB, joint := query(a), query(b), query(a+" "+b)
		for _, p := range catalog {
			require.Equal(t, onlyA[p.ID] && onlyB[p.ID], joint[p.ID], "product %s", p.ID)
		}
	})
}

func TestStableOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		catalog := genCatalog(t)
		search := rapid.SampledFrom([]string{"", "kit", "kit jardim", "ra", "agro pet"}).Draw(t, "search")
		sortMode := rapid.SampledFrom([]domain.SortMode{
			domain.SortRelevance, domain.SortPriceAsc, domain.SortPriceDesc, domain.SortRatingDesc,
		}).Draw(t, "sort")

		position := make(map[string]int, len(catalog))
		for i, p := range catalog {
			position[p.ID] = i
		}

		e := NewDefault()
		tokens := Tokenize(search)
		key := func(p domain.Product) float64 {
			switch sortMode {
			case domain.SortPriceAsc, domain.SortPriceDesc:
				return p.Price
			case domain.SortRatingDesc:
				return p.Rating
			}
			return float64(e.Score(p, tokens))
		}

		got := e.Query(catalog, stateWith(func(m *domain.FilterModel) {
			m.SetSearch(search)
			m.SetSort(sortMode)
		}))
		for i := 1; i < len(got); i++ {
			if key(got[i-1]) == key(got[i]) {
				require.Less(t, position[got[i-1].ID], position[got[i].ID])
			}
		}
	})
}

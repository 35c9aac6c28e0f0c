package domain

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestToParams_OmitsDefaults(t *testing.T) {
	p := DefaultFilterState().ToParams()
	assert.Empty(t, p)
	assert.Equal(t, "", p.Encode())
}

func TestToParams_AllFields(t *testing.T) {
	s := FilterState{
		Search:      "kit jardim",
		Category:    CategoryJardim,
		Sort:        SortPriceDesc,
		InStockOnly: true,
		PriceMin:    Float(100),
		PriceMax:    Float(299.9),
		Page:        3,
		PageSize:    24,
	}

	p := s.ToParams()

	assert.Equal(t, Params{
		ParamSearch:   "kit jardim",
		ParamCategory: "jardim",
		ParamSort:     "price_desc",
		ParamInStock:  "true",
		ParamPriceMin: "100",
		ParamPriceMax: "299.9",
		ParamPage:     "3",
		ParamPageSize: "24",
	}, p)
}

func TestRequestParams_AlwaysCarriesPagination(t *testing.T) {
	p := DefaultFilterState().RequestParams()
	assert.Equal(t, Params{ParamPage: "1", ParamPageSize: "12"}, p)
}

func TestFromParams_Tolerance(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   FilterState
	}{
		{
			name:   "missing keys take defaults",
			params: Params{},
			want:   DefaultFilterState(),
		},
		{
			name:   "unknown sort falls back to relevance",
			params: Params{ParamSort: "cheapest"},
			want:   DefaultFilterState(),
		},
		{
			name:   "non-listing category is dropped",
			params: Params{ParamCategory: "vet"},
			want:   DefaultFilterState(),
		},
		{
			name:   "unparseable prices are ignored",
			params: Params{ParamPriceMin: "abc", ParamPriceMax: "NaN"},
			want:   DefaultFilterState(),
		},
		{
			name:   "invalid pagination is normalized",
			params: Params{ParamPage: "-2", ParamPageSize: "0"},
			want:   DefaultFilterState(),
		},
		{
			name:   "estoque other than true is false",
			params: Params{ParamInStock: "yes"},
			want:   DefaultFilterState(),
		},
		{
			name:   "search is trimmed",
			params: Params{ParamSearch: "  racao  "},
			want: func() FilterState {
				s := DefaultFilterState()
				s.Search = "racao"
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromParams(tt.params))
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 7},
		{"abc", 7},
		{"0", 7},
		{"-1", 7},
		{"0.5", 7},
		{"Infinity", 7},
		{"2", 2},
		{"2.9", 2},
		{" 4 ", 4},
		{"1e3", 1000},
		{"1e20", math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePositiveInt(tt.raw, 7))
		})
	}
}

func TestParamsFromValues_FirstValueWins(t *testing.T) {
	values := url.Values{"q": {"a", "b"}, "page": {"2"}, "empty": {}}

	p := ParamsFromValues(values)

	assert.Equal(t, Params{"q": "a", "page": "2"}, p)
}

func TestParams_EncodeIsSorted(t *testing.T) {
	p := Params{ParamSort: "newest", ParamCategory: "pet", ParamSearch: "ração cães"}
	assert.Equal(t, "categoria=pet&ordenar=newest&q=ra%C3%A7%C3%A3o+c%C3%A3es", p.Encode())
}

// reachableState drives a FilterModel through random setter calls,
// so every generated state is one a browsing session can actually hold.
func reachableState(t *rapid.T) FilterState {
	initial := DefaultFilterState()
	if rapid.Bool().Draw(t, "customInitial") {
		initial = FromParams(Params{
			ParamSearch:   rapid.String().Draw(t, "initialSearch"),
			ParamPageSize: rapid.StringMatching(`[0-9]{1,3}`).Draw(t, "initialPageSize"),
		})
	}
	m := NewFilterModel(initial)

	steps := rapid.IntRange(0, 12).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		switch rapid.IntRange(0, 7).Draw(t, "op") {
		case 0:
			m.SetSearch(rapid.String().Draw(t, "search"))
		case 1:
			m.SetCategory(Category(rapid.SampledFrom([]string{"", "pet", "piscina", "jardim", "agro", "vet", "x"}).Draw(t, "category")))
		case 2:
			m.SetSort(SortMode(rapid.SampledFrom([]string{"relevance", "price_asc", "price_desc", "rating_desc", "newest", "bogus"}).Draw(t, "sort")))
		case 3:
			m.SetInStockOnly(rapid.Bool().Draw(t, "inStock"))
		case 4:
			var lo, hi *float64
			if rapid.Bool().Draw(t, "hasMin") {
				lo = Float(rapid.Float64().Draw(t, "min"))
			}
			if rapid.Bool().Draw(t, "hasMax") {
				hi = Float(rapid.Float64().Draw(t, "max"))
			}
			m.SetPriceRange(lo, hi)
		case 5:
			m.SetPage(rapid.IntRange(-5, 1<<40).Draw(t, "page"))
		case 6:
			m.SetPageSize(rapid.IntRange(-5, 500).Draw(t, "pageSize"))
		case 7:
			m.Reset()
		}
	}
	return m.State()
}

func TestFilterState_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := reachableState(t)

		got := FromParams(s.ToParams())

		require.Equal(t, s, got)
		require.Equal(t, s.ToParams(), got.ToParams())
	})
}

func TestFilterState_RoundTripThroughURL(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := reachableState(t)

		values, err := url.ParseQuery(s.ToParams().Encode())
		require.NoError(t, err)

		require.Equal(t, s, FromParams(ParamsFromValues(values)))
	})
}

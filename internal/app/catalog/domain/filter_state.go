package domain

import (
	"math"
	"strings"
)

// SortMode selects the ordering of the filtered product set.
type SortMode string

// Sort modes.
const (
	SortRelevance  SortMode = "relevance"
	SortPriceAsc   SortMode = "price_asc"
	SortPriceDesc  SortMode = "price_desc"
	SortRatingDesc SortMode = "rating_desc"
	SortNewest     SortMode = "newest"
)

// Valid reports whether s is one of the known sort modes.
func (s SortMode) Valid() bool {
	switch s {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNewest:
		return true
	}
	return false
}

// Filter state defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 12
	DefaultSort     = SortRelevance
)

// FilterState is the complete, serializable description of what a shopper is browsing.
// Category "" means no category; nil prices mean no bound.
type FilterState struct {
	Search      string
	Category    Category
	Sort        SortMode
	InStockOnly bool
	PriceMin    *float64
	PriceMax    *float64
	Page        int
	PageSize    int
}

// DefaultFilterState returns the state a fresh browsing session starts from.
func DefaultFilterState() FilterState {
	return FilterState{
		Sort:     DefaultSort,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Clone returns a copy that shares no pointers with s.
func (s FilterState) Clone() FilterState {
	out := s
	out.PriceMin = cloneFloat(s.PriceMin)
	out.PriceMax = cloneFloat(s.PriceMax)
	return out
}

// FilterModel owns a FilterState and is the only way to mutate it.
// It remembers the snapshot it was constructed with so Reset can return to it.
type FilterModel struct {
	initial FilterState
	state   FilterState
}

// NewFilterModel creates a model whose current and reset state is initial.
func NewFilterModel(initial FilterState) *FilterModel {
	initial = normalizeState(initial)
	return &FilterModel{
		initial: initial.Clone(),
		state:   initial.Clone(),
	}
}

// State returns a copy of the current state.
func (m *FilterModel) State() FilterState {
	return m.state.Clone()
}

// Initial returns a copy of the construction snapshot.
func (m *FilterModel) Initial() FilterState {
	return m.initial.Clone()
}

// SetSearch replaces the search text. Surrounding whitespace is dropped.
func (m *FilterModel) SetSearch(search string) {
	m.state.Search = strings.TrimSpace(search)
}

// SetCategory selects a listing category. Any other value clears the selection.
func (m *FilterModel) SetCategory(category Category) {
	if !category.IsListing() {
		category = ""
	}
	m.state.Category = category
}

// SetSort sets the sort mode. Unknown modes fall back to relevance.
func (m *FilterModel) SetSort(sort SortMode) {
	if !sort.Valid() {
		sort = DefaultSort
	}
	m.state.Sort = sort
}

// SetInStockOnly toggles the stock filter.
func (m *FilterModel) SetInStockOnly(inStockOnly bool) {
	m.state.InStockOnly = inStockOnly
}

// SetPriceRange sets both price bounds. Nil or non-finite bounds are cleared.
func (m *FilterModel) SetPriceRange(minPrice, maxPrice *float64) {
	m.state.PriceMin = finiteOrNil(minPrice)
	m.state.PriceMax = finiteOrNil(maxPrice)
}

// SetPage sets the 1-indexed page. Values below 1 become 1.
func (m *FilterModel) SetPage(page int) {
	m.state.Page = clampPositive(page, DefaultPage)
}

// SetPageSize sets the page size. Values below 1 become the default.
func (m *FilterModel) SetPageSize(pageSize int) {
	m.state.PageSize = clampPositive(pageSize, DefaultPageSize)
}

// Reset returns the state to the construction snapshot.
func (m *FilterModel) Reset() {
	m.state = m.initial.Clone()
}

// normalizeState applies the setter rules to a whole state.
func normalizeState(s FilterState) FilterState {
	m := &FilterModel{state: s.Clone()}
	m.SetSearch(s.Search)
	m.SetCategory(s.Category)
	m.SetSort(s.Sort)
	m.SetPriceRange(s.PriceMin, s.PriceMax)
	m.SetPage(s.Page)
	m.SetPageSize(s.PageSize)
	return m.state
}

func clampPositive(v, def int) int {
	if v < 1 {
		return def
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return v
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return cloneFloat(v)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Float returns a pointer to v, for building price bounds.
func Float(v float64) *float64 {
	return &v
}

package domain

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter keys of the storefront URL and the query endpoint.
const (
	ParamSearch   = "q"
	ParamCategory = "categoria"
	ParamSort     = "ordenar"
	ParamInStock  = "estoque"
	ParamPriceMin = "precoMin"
	ParamPriceMax = "precoMax"
	ParamPage     = "page"
	ParamPageSize = "pageSize"
)

// Params is the flat, string-keyed form of a FilterState.
type Params map[string]string

// ParamsFromValues keeps the first value of every key.
func ParamsFromValues(values url.Values) Params {
	p := make(Params, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			p[k] = vs[0]
		}
	}
	return p
}

// Values converts p to url.Values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	for k, val := range p {
		v.Set(k, val)
	}
	return v
}

// Encode returns the URL-encoded query string, sorted by key.
func (p Params) Encode() string {
	return p.Values().Encode()
}

// With returns a copy of p with key set to value.
func (p Params) With(key, value string) Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[key] = value
	return out
}

// ToParams serializes s in canonical minimal form: keys equal to their default are omitted.
func (s FilterState) ToParams() Params {
	p := Params{}
	if s.Search != "" {
		p[ParamSearch] = s.Search
	}
	if s.Category != "" {
		p[ParamCategory] = string(s.Category)
	}
	if s.Sort != "" && s.Sort != DefaultSort {
		p[ParamSort] = string(s.Sort)
	}
	if s.InStockOnly {
		p[ParamInStock] = "true"
	}
	if s.PriceMin != nil {
		p[ParamPriceMin] = formatFloat(*s.PriceMin)
	}
	if s.PriceMax != nil {
		p[ParamPriceMax] = formatFloat(*s.PriceMax)
	}
	if s.Page != DefaultPage {
		p[ParamPage] = strconv.Itoa(s.Page)
	}
	if s.PageSize != DefaultPageSize {
		p[ParamPageSize] = strconv.Itoa(s.PageSize)
	}
	return p
}

// RequestParams is ToParams with page and pageSize always present,
// the form sent to the query endpoint.
func (s FilterState) RequestParams() Params {
	return s.ToParams().
		With(ParamPage, strconv.Itoa(s.Page)).
		With(ParamPageSize, strconv.Itoa(s.PageSize))
}

// FromParams parses p into a FilterState. Missing keys take their defaults,
// unparseable prices are left unset and unknown enum values fall back to the default.
func FromParams(p Params) FilterState {
	s := DefaultFilterState()
	s.Search = strings.TrimSpace(p[ParamSearch])
	if c := Category(p[ParamCategory]); c.IsListing() {
		s.Category = c
	}
	if sort := SortMode(p[ParamSort]); sort.Valid() {
		s.Sort = sort
	}
	s.InStockOnly = p[ParamInStock] == "true"
	s.PriceMin = parseFloat(p[ParamPriceMin])
	s.PriceMax = parseFloat(p[ParamPriceMax])
	s.Page = ParsePositiveInt(p[ParamPage], DefaultPage)
	s.PageSize = ParsePositiveInt(p[ParamPageSize], DefaultPageSize)
	return s
}

// ParsePositiveInt parses a page-like number. Empty, non-numeric, non-finite
// and values below 1 yield def; fractions are truncated.
func ParsePositiveInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	v = math.Trunc(v)
	if v < 1 {
		return def
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

func parseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-catalog/internal/app/catalog/domain"
)

// Message shapes:
//
//	ListProducts   request: the query parameters as a flat object ({"q": "racao", "page": "2"})
//	               reply:   the ResultPage JSON ({"products": [...], "meta": {...}})
//	GetProduct     request: {"slug": "..."}
//	               reply:   the ProductDetails JSON ({"product": {...}, "similar": [...]})
//	ListCategories request: {}
//	               reply:   {"categories": [{"id": "pet", "label": "Pet", "count": 5}, ...]}
const (
	fieldSlug       = "slug"
	fieldCategories = "categories"
)

// paramsFromStruct flattens scalar fields into Params. Nested values are ignored.
func paramsFromStruct(s *structpb.Struct) domain.Params {
	params := make(domain.Params, len(s.GetFields()))
	for key, v := range s.GetFields() {
		switch kind := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			params[key] = kind.StringValue
		case *structpb.Value_NumberValue:
			params[key] = strconv.FormatFloat(kind.NumberValue, 'f', -1, 64)
		case *structpb.Value_BoolValue:
			params[key] = strconv.FormatBool(kind.BoolValue)
		}
	}
	return params
}

// paramsToStruct encodes params as string fields.
func paramsToStruct(params domain.Params) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(params))
	for key, value := range params {
		fields[key] = structpb.NewStringValue(value)
	}
	return &structpb.Struct{Fields: fields}
}

// toStruct converts a JSON-tagged domain value to a Struct through its JSON form.
func toStruct(v interface{}) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reply: %w", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("failed to convert reply: %w", err)
	}
	return s, nil
}

// fromStruct decodes a Struct into a JSON-tagged domain value.
func fromStruct(s *structpb.Struct, out interface{}) error {
	b, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to convert reply: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode reply: %w", err)
	}
	return nil
}

type categoriesReply struct {
	Categories []domain.CategorySummary `json:"categories"`
}

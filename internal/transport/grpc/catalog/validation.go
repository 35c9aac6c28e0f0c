package catalog

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// validateGetProductRequest validates the GetProduct request.
func validateGetProductRequest(req *structpb.Struct) (string, error) {
	v, ok := req.GetFields()[fieldSlug]
	if !ok {
		return "", status.Error(codes.InvalidArgument, "slug is required")
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Error(codes.InvalidArgument, "slug must be a string")
	}
	if sv.StringValue == "" {
		return "", status.Error(codes.InvalidArgument, "slug is required")
	}
	return sv.StringValue, nil
}

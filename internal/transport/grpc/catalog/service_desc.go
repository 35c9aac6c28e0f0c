package catalog

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "catalog.v1.CatalogQuery"

// Full method names, as used by clients and interceptors.
const (
	ListProductsMethod   = "/" + ServiceName + "/ListProducts"
	GetProductMethod     = "/" + ServiceName + "/GetProduct"
	ListCategoriesMethod = "/" + ServiceName + "/ListCategories"
)

// CatalogQueryServer is the server API of the catalog query service.
// Requests and replies are google.protobuf.Struct messages; see mappers.go for their shape.
type CatalogQueryServer interface {
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc describes the catalog query service to grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogQueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler:    unaryHandler(ListProductsMethod, CatalogQueryServer.ListProducts),
		},
		{
			MethodName: "GetProduct",
			Handler:    unaryHandler(GetProductMethod, CatalogQueryServer.GetProduct),
		},
		{
			MethodName: "ListCategories",
			Handler:    unaryHandler(ListCategoriesMethod, CatalogQueryServer.ListCategories),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

// RegisterCatalogQueryServer registers srv with s.
func RegisterCatalogQueryServer(s grpc.ServiceRegistrar, srv CatalogQueryServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type unaryMethod func(CatalogQueryServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogQueryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CatalogQueryServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Package service defines the LandRegistry gRPC service. Requests and responses are
// structpb.Struct messages, so no generated code is needed on either side.
package service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "land.LandRegistry"

const (
	RegisterUserMethod   = "RegisterUser"
	SubmitTransferMethod = "SubmitTransfer"
	QueryByLandMethod    = "QueryByLand"
	QueryByUserMethod    = "QueryByUser"
	GetChainMethod       = "GetChain"
)

// LandRegistryServer is the server API for the LandRegistry service.
type LandRegistryServer interface {
	// Register a user with name, id and password.
	RegisterUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Authorize and queue a transfer, mining a block once enough transfers are pending.
	SubmitTransfer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// All transfers of a land, mined first then pending.
	QueryByLand(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// All transfers involving a user, mined first then pending.
	QueryByUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// The whole chain from genesis.
	GetChain(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedLandRegistryServer can be embedded to have forward compatible implementations.
type UnimplementedLandRegistryServer struct{}

func (UnimplementedLandRegistryServer) RegisterUser(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterUser not implemented")
}

func (UnimplementedLandRegistryServer) SubmitTransfer(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitTransfer not implemented")
}

func (UnimplementedLandRegistryServer) QueryByLand(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueryByLand not implemented")
}

func (UnimplementedLandRegistryServer) QueryByUser(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueryByUser not implemented")
}

func (UnimplementedLandRegistryServer) GetChain(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChain not implemented")
}

type unaryCall func(LandRegistryServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(LandRegistryServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(LandRegistryServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the rpc path of method, e.g. "/land.LandRegistry/GetChain".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

var LandRegistry_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LandRegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(RegisterUserMethod, LandRegistryServer.RegisterUser),
		unaryHandler(SubmitTransferMethod, LandRegistryServer.SubmitTransfer),
		unaryHandler(QueryByLandMethod, LandRegistryServer.QueryByLand),
		unaryHandler(QueryByUserMethod, LandRegistryServer.QueryByUser),
		unaryHandler(GetChainMethod, LandRegistryServer.GetChain),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterLandRegistryServer(s grpc.ServiceRegistrar, srv LandRegistryServer) {
	s.RegisterService(&LandRegistry_ServiceDesc, srv)
}

// LandRegistryClient is the client API for the LandRegistry service. Errors carrying a known
// status code are turned back into the matching model error.
type LandRegistryClient interface {
	RegisterUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SubmitTransfer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	QueryByLand(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	QueryByUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetChain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type landRegistryClient struct {
	cc grpc.ClientConnInterface
}

func NewLandRegistryClient(cc grpc.ClientConnInterface) LandRegistryClient {
	return &landRegistryClient{cc}
}

func (c *landRegistryClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, FromStatus(err)
	}
	return out, nil
}

func (c *landRegistryClient) RegisterUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RegisterUserMethod, in, opts...)
}

func (c *landRegistryClient) SubmitTransfer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SubmitTransferMethod, in, opts...)
}

func (c *landRegistryClient) QueryByLand(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QueryByLandMethod, in, opts...)
}

func (c *landRegistryClient) QueryByUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, QueryByUserMethod, in, opts...)
}

func (c *landRegistryClient) GetChain(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetChainMethod, in, opts...)
}

package checkerpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CheckerServiceClient is the client API for CheckerService, the shape
// protoc-gen-go-grpc emits for a service with one unary RPC.
type CheckerServiceClient interface {
	CheckLine(ctx context.Context, in *CheckLineRequest, opts ...grpc.CallOption) (*CheckLineResponse, error)
}

type checkerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCheckerServiceClient wraps an established connection for making
// CheckLine calls.
func NewCheckerServiceClient(cc grpc.ClientConnInterface) CheckerServiceClient {
	return &checkerServiceClient{cc}
}

func (c *checkerServiceClient) CheckLine(ctx context.Context, in *CheckLineRequest, opts ...grpc.CallOption) (*CheckLineResponse, error) {
	out := new(CheckLineResponse)
	err := c.cc.Invoke(ctx, CheckerService_CheckLine_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CheckerServiceServer is the server API for CheckerService.
type CheckerServiceServer interface {
	CheckLine(context.Context, *CheckLineRequest) (*CheckLineResponse, error)
}

// UnimplementedCheckerServiceServer embeds into a concrete server so adding
// a new RPC later doesn't break existing implementations, matching the
// generated-code convention every grpc service uses.
type UnimplementedCheckerServiceServer struct{}

func (UnimplementedCheckerServiceServer) CheckLine(context.Context, *CheckLineRequest) (*CheckLineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckLine not implemented")
}

const CheckerService_CheckLine_FullMethodName = "/checkerpb.CheckerService/CheckLine"

// RegisterCheckerServiceServer registers srv's RPC handlers against s.
func RegisterCheckerServiceServer(s grpc.ServiceRegistrar, srv CheckerServiceServer) {
	s.RegisterService(&CheckerService_ServiceDesc, srv)
}

func _CheckerService_CheckLine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckLineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CheckerServiceServer).CheckLine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CheckerService_CheckLine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CheckerServiceServer).CheckLine(ctx, req.(*CheckLineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CheckerService_ServiceDesc is the grpc.ServiceDesc for CheckerService; it
// is used by RegisterCheckerServiceServer and could also be used directly
// with grpc.NewServer().RegisterService.
var CheckerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "checkerpb.CheckerService",
	HandlerType: (*CheckerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CheckLine",
			Handler:    _CheckerService_CheckLine_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "checker.proto",
}

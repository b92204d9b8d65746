// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: chrono.proto

package chronopb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	Chrono_Now_FullMethodName          = "/chrono.Chrono/Now"
	Chrono_ShiftDays_FullMethodName    = "/chrono.Chrono/ShiftDays"
	Chrono_ShiftSeconds_FullMethodName = "/chrono.Chrono/ShiftSeconds"
	Chrono_Compare_FullMethodName      = "/chrono.Chrono/Compare"
	Chrono_Health_FullMethodName       = "/chrono.Chrono/Health"
)

// ChronoClient is the client API for Chrono service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Chrono exposes calendar and clock arithmetic over gRPC.
type ChronoClient interface {
	// Now returns the service's current date and time decomposed into
	// calendar fields.
	Now(ctx context.Context, in *NowRequest, opts ...grpc.CallOption) (*NowResponse, error)
	// ShiftDays moves a date-time by a whole number of days.
	ShiftDays(ctx context.Context, in *ShiftDaysRequest, opts ...grpc.CallOption) (*ShiftDaysResponse, error)
	// ShiftSeconds moves a date-time by a whole number of seconds,
	// carrying through minutes, hours and days.
	ShiftSeconds(ctx context.Context, in *ShiftSecondsRequest, opts ...grpc.CallOption) (*ShiftSecondsResponse, error)
	// Compare orders two date-times chronologically.
	Compare(ctx context.Context, in *CompareRequest, opts ...grpc.CallOption) (*CompareResponse, error)
	// Health reports whether the service is ready.
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
}

type chronoClient struct {
	cc grpc.ClientConnInterface
}

func NewChronoClient(cc grpc.ClientConnInterface) ChronoClient {
	return &chronoClient{cc}
}

func (c *chronoClient) Now(ctx context.Context, in *NowRequest, opts ...grpc.CallOption) (*NowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NowResponse)
	err := c.cc.Invoke(ctx, Chrono_Now_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chronoClient) ShiftDays(ctx context.Context, in *ShiftDaysRequest, opts ...grpc.CallOption) (*ShiftDaysResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShiftDaysResponse)
	err := c.cc.Invoke(ctx, Chrono_ShiftDays_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chronoClient) ShiftSeconds(ctx context.Context, in *ShiftSecondsRequest, opts ...grpc.CallOption) (*ShiftSecondsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShiftSecondsResponse)
	err := c.cc.Invoke(ctx, Chrono_ShiftSeconds_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chronoClient) Compare(ctx context.Context, in *CompareRequest, opts ...grpc.CallOption) (*CompareResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompareResponse)
	err := c.cc.Invoke(ctx, Chrono_Compare_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chronoClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(HealthResponse)
	err := c.cc.Invoke(ctx, Chrono_Health_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ChronoServer is the server API for Chrono service.
// All implementations must embed UnimplementedChronoServer
// for forward compatibility
//
// Chrono exposes calendar and clock arithmetic over gRPC.
type ChronoServer interface {
	// Now returns the service's current date and time decomposed into
	// calendar fields.
	Now(context.Context, *NowRequest) (*NowResponse, error)
	// ShiftDays moves a date-time by a whole number of days.
	ShiftDays(context.Context, *ShiftDaysRequest) (*ShiftDaysResponse, error)
	// ShiftSeconds moves a date-time by a whole number of seconds,
	// carrying through minutes, hours and days.
	ShiftSeconds(context.Context, *ShiftSecondsRequest) (*ShiftSecondsResponse, error)
	// Compare orders two date-times chronologically.
	Compare(context.Context, *CompareRequest) (*CompareResponse, error)
	// Health reports whether the service is ready.
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
	mustEmbedUnimplementedChronoServer()
}

// UnimplementedChronoServer must be embedded to have forward compatible implementations.
type UnimplementedChronoServer struct {
}

func (UnimplementedChronoServer) Now(context.Context, *NowRequest) (*NowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Now not implemented")
}
func (UnimplementedChronoServer) ShiftDays(context.Context, *ShiftDaysRequest) (*ShiftDaysResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ShiftDays not implemented")
}
func (UnimplementedChronoServer) ShiftSeconds(context.Context, *ShiftSecondsRequest) (*ShiftSecondsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ShiftSeconds not implemented")
}
func (UnimplementedChronoServer) Compare(context.Context, *CompareRequest) (*CompareResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Compare not implemented")
}
func (UnimplementedChronoServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}
func (UnimplementedChronoServer) mustEmbedUnimplementedChronoServer() {}

// UnsafeChronoServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ChronoServer will
// result in compilation errors.
type UnsafeChronoServer interface {
	mustEmbedUnimplementedChronoServer()
}

func RegisterChronoServer(s grpc.ServiceRegistrar, srv ChronoServer) {
	s.RegisterService(&Chrono_ServiceDesc, srv)
}

func _Chrono_Now_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChronoServer).Now(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Chrono_Now_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChronoServer).Now(ctx, req.(*NowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Chrono_ShiftDays_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ShiftDaysRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChronoServer).ShiftDays(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Chrono_ShiftDays_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChronoServer).ShiftDays(ctx, req.(*ShiftDaysRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Chrono_ShiftSeconds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ShiftSecondsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChronoServer).ShiftSeconds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Chrono_ShiftSeconds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChronoServer).ShiftSeconds(ctx, req.(*ShiftSecondsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Chrono_Compare_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChronoServer).Compare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Chrono_Compare_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChronoServer).Compare(ctx, req.(*CompareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Chrono_Health_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChronoServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Chrono_Health_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChronoServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Chrono_ServiceDesc is the grpc.ServiceDesc for Chrono service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Chrono_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chrono.Chrono",
	HandlerType: (*ChronoServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Now",
			Handler:    _Chrono_Now_Handler,
		},
		{
			MethodName: "ShiftDays",
			Handler:    _Chrono_ShiftDays_Handler,
		},
		{
			MethodName: "ShiftSeconds",
			Handler:    _Chrono_ShiftSeconds_Handler,
		},
		{
			MethodName: "Compare",
			Handler:    _Chrono_Compare_Handler,
		},
		{
			MethodName: "Health",
			Handler:    _Chrono_Health_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "chrono.proto",
}

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: tokenline/v1/queue.proto

package tokenlinev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QueueService_BookAppointment_FullMethodName         = "/tokenline.v1.QueueService/BookAppointment"
	QueueService_CallNext_FullMethodName                = "/tokenline.v1.QueueService/CallNext"
	QueueService_FinishCurrent_FullMethodName           = "/tokenline.v1.QueueService/FinishCurrent"
	QueueService_UpdateAppointmentStatus_FullMethodName = "/tokenline.v1.QueueService/UpdateAppointmentStatus"
	QueueService_RateAppointment_FullMethodName         = "/tokenline.v1.QueueService/RateAppointment"
	QueueService_GetQueuePosition_FullMethodName        = "/tokenline.v1.QueueService/GetQueuePosition"
	QueueService_PredictWaitTime_FullMethodName         = "/tokenline.v1.QueueService/PredictWaitTime"
	QueueService_RecommendProviders_FullMethodName      = "/tokenline.v1.QueueService/RecommendProviders"
	QueueService_ListUserAppointments_FullMethodName    = "/tokenline.v1.QueueService/ListUserAppointments"
	QueueService_ListProviderQueue_FullMethodName       = "/tokenline.v1.QueueService/ListProviderQueue"
)

// QueueServiceClient is the client API for QueueService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type QueueServiceClient interface {
	BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*BookAppointmentResponse, error)
	CallNext(ctx context.Context, in *CallNextRequest, opts ...grpc.CallOption) (*CallNextResponse, error)
	FinishCurrent(ctx context.Context, in *FinishCurrentRequest, opts ...grpc.CallOption) (*FinishCurrentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, in *UpdateAppointmentStatusRequest, opts ...grpc.CallOption) (*UpdateAppointmentStatusResponse, error)
	RateAppointment(ctx context.Context, in *RateAppointmentRequest, opts ...grpc.CallOption) (*RateAppointmentResponse, error)
	GetQueuePosition(ctx context.Context, in *GetQueuePositionRequest, opts ...grpc.CallOption) (*GetQueuePositionResponse, error)
	PredictWaitTime(ctx context.Context, in *PredictWaitTimeRequest, opts ...grpc.CallOption) (*PredictWaitTimeResponse, error)
	RecommendProviders(ctx context.Context, in *RecommendProvidersRequest, opts ...grpc.CallOption) (*RecommendProvidersResponse, error)
	ListUserAppointments(ctx context.Context, in *ListUserAppointmentsRequest, opts ...grpc.CallOption) (*ListUserAppointmentsResponse, error)
	ListProviderQueue(ctx context.Context, in *ListProviderQueueRequest, opts ...grpc.CallOption) (*ListProviderQueueResponse, error)
}

type queueServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueueServiceClient(cc grpc.ClientConnInterface) QueueServiceClient {
	return &queueServiceClient{cc}
}

func (c *queueServiceClient) BookAppointment(ctx context.Context, in *BookAppointmentRequest, opts ...grpc.CallOption) (*BookAppointmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BookAppointmentResponse)
	err := c.cc.Invoke(ctx, QueueService_BookAppointment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) CallNext(ctx context.Context, in *CallNextRequest, opts ...grpc.CallOption) (*CallNextResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CallNextResponse)
	err := c.cc.Invoke(ctx, QueueService_CallNext_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) FinishCurrent(ctx context.Context, in *FinishCurrentRequest, opts ...grpc.CallOption) (*FinishCurrentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinishCurrentResponse)
	err := c.cc.Invoke(ctx, QueueService_FinishCurrent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) UpdateAppointmentStatus(ctx context.Context, in *UpdateAppointmentStatusRequest, opts ...grpc.CallOption) (*UpdateAppointmentStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateAppointmentStatusResponse)
	err := c.cc.Invoke(ctx, QueueService_UpdateAppointmentStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) RateAppointment(ctx context.Context, in *RateAppointmentRequest, opts ...grpc.CallOption) (*RateAppointmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RateAppointmentResponse)
	err := c.cc.Invoke(ctx, QueueService_RateAppointment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) GetQueuePosition(ctx context.Context, in *GetQueuePositionRequest, opts ...grpc.CallOption) (*GetQueuePositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQueuePositionResponse)
	err := c.cc.Invoke(ctx, QueueService_GetQueuePosition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) PredictWaitTime(ctx context.Context, in *PredictWaitTimeRequest, opts ...grpc.CallOption) (*PredictWaitTimeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PredictWaitTimeResponse)
	err := c.cc.Invoke(ctx, QueueService_PredictWaitTime_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) RecommendProviders(ctx context.Context, in *RecommendProvidersRequest, opts ...grpc.CallOption) (*RecommendProvidersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecommendProvidersResponse)
	err := c.cc.Invoke(ctx, QueueService_RecommendProviders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) ListUserAppointments(ctx context.Context, in *ListUserAppointmentsRequest, opts ...grpc.CallOption) (*ListUserAppointmentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUserAppointmentsResponse)
	err := c.cc.Invoke(ctx, QueueService_ListUserAppointments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queueServiceClient) ListProviderQueue(ctx context.Context, in *ListProviderQueueRequest, opts ...grpc.CallOption) (*ListProviderQueueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProviderQueueResponse)
	err := c.cc.Invoke(ctx, QueueService_ListProviderQueue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueueServiceServer is the server API for QueueService service.
// All implementations must embed UnimplementedQueueServiceServer
// for forward compatibility.
type QueueServiceServer interface {
	BookAppointment(context.Context, *BookAppointmentRequest) (*BookAppointmentResponse, error)
	CallNext(context.Context, *CallNextRequest) (*CallNextResponse, error)
	FinishCurrent(context.Context, *FinishCurrentRequest) (*FinishCurrentResponse, error)
	UpdateAppointmentStatus(context.Context, *UpdateAppointmentStatusRequest) (*UpdateAppointmentStatusResponse, error)
	RateAppointment(context.Context, *RateAppointmentRequest) (*RateAppointmentResponse, error)
	GetQueuePosition(context.Context, *GetQueuePositionRequest) (*GetQueuePositionResponse, error)
	PredictWaitTime(context.Context, *PredictWaitTimeRequest) (*PredictWaitTimeResponse, error)
	RecommendProviders(context.Context, *RecommendProvidersRequest) (*RecommendProvidersResponse, error)
	ListUserAppointments(context.Context, *ListUserAppointmentsRequest) (*ListUserAppointmentsResponse, error)
	ListProviderQueue(context.Context, *ListProviderQueueRequest) (*ListProviderQueueResponse, error)
	mustEmbedUnimplementedQueueServiceServer()
}

// UnimplementedQueueServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueueServiceServer struct{}

func (UnimplementedQueueServiceServer) BookAppointment(context.Context, *BookAppointmentRequest) (*BookAppointmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BookAppointment not implemented")
}
func (UnimplementedQueueServiceServer) CallNext(context.Context, *CallNextRequest) (*CallNextResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CallNext not implemented")
}
func (UnimplementedQueueServiceServer) FinishCurrent(context.Context, *FinishCurrentRequest) (*FinishCurrentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinishCurrent not implemented")
}
func (UnimplementedQueueServiceServer) UpdateAppointmentStatus(context.Context, *UpdateAppointmentStatusRequest) (*UpdateAppointmentStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateAppointmentStatus not implemented")
}
func (UnimplementedQueueServiceServer) RateAppointment(context.Context, *RateAppointmentRequest) (*RateAppointmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RateAppointment not implemented")
}
func (UnimplementedQueueServiceServer) GetQueuePosition(context.Context, *GetQueuePositionRequest) (*GetQueuePositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetQueuePosition not implemented")
}
func (UnimplementedQueueServiceServer) PredictWaitTime(context.Context, *PredictWaitTimeRequest) (*PredictWaitTimeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PredictWaitTime not implemented")
}
func (UnimplementedQueueServiceServer) RecommendProviders(context.Context, *RecommendProvidersRequest) (*RecommendProvidersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecommendProviders not implemented")
}
func (UnimplementedQueueServiceServer) ListUserAppointments(context.Context, *ListUserAppointmentsRequest) (*ListUserAppointmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUserAppointments not implemented")
}
func (UnimplementedQueueServiceServer) ListProviderQueue(context.Context, *ListProviderQueueRequest) (*ListProviderQueueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProviderQueue not implemented")
}
func (UnimplementedQueueServiceServer) mustEmbedUnimplementedQueueServiceServer() {}
func (UnimplementedQueueServiceServer) testEmbeddedByValue()                      {}

// UnsafeQueueServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueueServiceServer will
// result in compilation errors.
type UnsafeQueueServiceServer interface {
	mustEmbedUnimplementedQueueServiceServer()
}

func RegisterQueueServiceServer(s grpc.ServiceRegistrar, srv QueueServiceServer) {
	// If the following call pancis, it indicates UnimplementedQueueServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueueService_ServiceDesc, srv)
}

func _QueueService_BookAppointment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BookAppointmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).BookAppointment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_BookAppointment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).BookAppointment(ctx, req.(*BookAppointmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_CallNext_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CallNextRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).CallNext(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_CallNext_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).CallNext(ctx, req.(*CallNextRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_FinishCurrent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishCurrentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).FinishCurrent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_FinishCurrent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).FinishCurrent(ctx, req.(*FinishCurrentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_UpdateAppointmentStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateAppointmentStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).UpdateAppointmentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_UpdateAppointmentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).UpdateAppointmentStatus(ctx, req.(*UpdateAppointmentStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_RateAppointment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RateAppointmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).RateAppointment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_RateAppointment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).RateAppointment(ctx, req.(*RateAppointmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_GetQueuePosition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQueuePositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).GetQueuePosition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_GetQueuePosition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).GetQueuePosition(ctx, req.(*GetQueuePositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_PredictWaitTime_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PredictWaitTimeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).PredictWaitTime(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_PredictWaitTime_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).PredictWaitTime(ctx, req.(*PredictWaitTimeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_RecommendProviders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecommendProvidersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).RecommendProviders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_RecommendProviders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).RecommendProviders(ctx, req.(*RecommendProvidersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_ListUserAppointments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUserAppointmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).ListUserAppointments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_ListUserAppointments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).ListUserAppointments(ctx, req.(*ListUserAppointmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueueService_ListProviderQueue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProviderQueueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueueServiceServer).ListProviderQueue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueueService_ListProviderQueue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueueServiceServer).ListProviderQueue(ctx, req.(*ListProviderQueueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueueService_ServiceDesc is the grpc.ServiceDesc for QueueService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueueService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tokenline.v1.QueueService",
	HandlerType: (*QueueServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BookAppointment",
			Handler:    _QueueService_BookAppointment_Handler,
		},
		{
			MethodName: "CallNext",
			Handler:    _QueueService_CallNext_Handler,
		},
		{
			MethodName: "FinishCurrent",
			Handler:    _QueueService_FinishCurrent_Handler,
		},
		{
			MethodName: "UpdateAppointmentStatus",
			Handler:    _QueueService_UpdateAppointmentStatus_Handler,
		},
		{
			MethodName: "RateAppointment",
			Handler:    _QueueService_RateAppointment_Handler,
		},
		{
			MethodName: "GetQueuePosition",
			Handler:    _QueueService_GetQueuePosition_Handler,
		},
		{
			MethodName: "PredictWaitTime",
			Handler:    _QueueService_PredictWaitTime_Handler,
		},
		{
			MethodName: "RecommendProviders",
			Handler:    _QueueService_RecommendProviders_Handler,
		},
		{
			MethodName: "ListUserAppointments",
			Handler:    _QueueService_ListUserAppointments_Handler,
		},
		{
			MethodName: "ListProviderQueue",
			Handler:    _QueueService_ListProviderQueue_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tokenline/v1/queue.proto",
}

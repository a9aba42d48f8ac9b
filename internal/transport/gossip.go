package transport

import (
	"context"

	"google.golang.org/grpc"

	"github.com/goodnatureofminers/pocschain/internal/model"
)

// GossipServiceName is the fully qualified gossip service name.
const GossipServiceName = "pocs.v1.Gossip"

const (
	methodSubmitBlock       = "/" + GossipServiceName + "/SubmitBlock"
	methodSubmitTransaction = "/" + GossipServiceName + "/SubmitTransaction"
)

type (
	SubmitBlockRequest struct {
		Block model.Block `json:"block"`
	}
	SubmitTransactionRequest struct {
		Transaction model.Transaction `json:"transaction"`
	}
	SubmitResponse struct {
		Accepted bool   `json:"accepted"`
		Class    string `json:"class,omitempty"`
		Reason   string `json:"reason,omitempty"`
	}
)

type gossipClient struct {
	cc grpc.ClientConnInterface
}

// NewGossipClient wraps a connection. Calls use the JSON codec.
func NewGossipClient(cc grpc.ClientConnInterface) GossipClient {
	return &gossipClient{cc: cc}
}

func (c *gossipClient) SubmitBlock(ctx context.Context, in *SubmitBlockRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	out := new(SubmitResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, methodSubmitBlock, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gossipClient) SubmitTransaction(ctx context.Context, in *SubmitTransactionRequest, opts ...grpc.CallOption) (*SubmitResponse, error) {
	out := new(SubmitResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, methodSubmitTransaction, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterGossipServer registers srv on s.
func RegisterGossipServer(s grpc.ServiceRegistrar, srv GossipServer) {
	s.RegisterService(&gossipServiceDesc, srv)
}

var gossipServiceDesc = grpc.ServiceDesc{
	ServiceName: GossipServiceName,
	HandlerType: (*GossipServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitBlock", Handler: submitBlockHandler},
		{MethodName: "SubmitTransaction", Handler: submitTransactionHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pocs/v1/gossip",
}

func submitBlockHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SubmitBlockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GossipServer).SubmitBlock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSubmitBlock}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GossipServer).SubmitBlock(ctx, req.(*SubmitBlockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func submitTransactionHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SubmitTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GossipServer).SubmitTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSubmitTransaction}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GossipServer).SubmitTransaction(ctx, req.(*SubmitTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

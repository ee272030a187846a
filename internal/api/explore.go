package api

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ExploreService_ListLikedYou_FullMethodName    = "/shubhvivah.explore.ExploreService/ListLikedYou"
	ExploreService_ListNewLikedYou_FullMethodName = "/shubhvivah.explore.ExploreService/ListNewLikedYou"
	ExploreService_CountLikedYou_FullMethodName   = "/shubhvivah.explore.ExploreService/CountLikedYou"
	ExploreService_PutDecision_FullMethodName     = "/shubhvivah.explore.ExploreService/PutDecision"
)

type ListLikedYouRequest struct {
	RecipientUserID string  `json:"recipient_user_id"`
	PaginationToken *string `json:"pagination_token,omitempty"`
}

type Liker struct {
	ActorID       string `json:"actor_id"`
	Kind          string `json:"kind"`
	UnixTimestamp uint64 `json:"unix_timestamp"`
}

type ListLikedYouResponse struct {
	Likers              []Liker `json:"likers"`
	NextPaginationToken *string `json:"next_pagination_token,omitempty"`
}

type CountLikedYouRequest struct {
	RecipientUserID string `json:"recipient_user_id"`
}

type CountLikedYouResponse struct {
	Count uint64 `json:"count"`
}

// PutDecisionRequest records a decision made outside a swipe session, such
// as from a full profile page. Kind is "pass", "like" or "superlike".
type PutDecisionRequest struct {
	ActorUserID     string `json:"actor_user_id"`
	RecipientUserID string `json:"recipient_user_id"`
	Kind            string `json:"kind"`
}

type PutDecisionResponse struct {
	MutualLikes bool `json:"mutual_likes"`
}

// ExploreServiceServer is the server API for the "who liked me" views.
type ExploreServiceServer interface {
	ListLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error)
	ListNewLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error)
	CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error)
	PutDecision(context.Context, *PutDecisionRequest) (*PutDecisionResponse, error)
}

type UnimplementedExploreServiceServer struct{}

func (UnimplementedExploreServiceServer) ListLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error) {
	return nil, unimplemented("ListLikedYou")
}
func (UnimplementedExploreServiceServer) ListNewLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error) {
	return nil, unimplemented("ListNewLikedYou")
}
func (UnimplementedExploreServiceServer) CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error) {
	return nil, unimplemented("CountLikedYou")
}
func (UnimplementedExploreServiceServer) PutDecision(context.Context, *PutDecisionRequest) (*PutDecisionResponse, error) {
	return nil, unimplemented("PutDecision")
}

type exploreSrv = ExploreServiceServer

var ExploreService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shubhvivah.explore.ExploreService",
	HandlerType: (*ExploreServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListLikedYou", Handler: unary(ExploreService_ListLikedYou_FullMethodName, exploreSrv.ListLikedYou)},
		{MethodName: "ListNewLikedYou", Handler: unary(ExploreService_ListNewLikedYou_FullMethodName, exploreSrv.ListNewLikedYou)},
		{MethodName: "CountLikedYou", Handler: unary(ExploreService_CountLikedYou_FullMethodName, exploreSrv.CountLikedYou)},
		{MethodName: "PutDecision", Handler: unary(ExploreService_PutDecision_FullMethodName, exploreSrv.PutDecision)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "explore.proto",
}

func RegisterExploreServiceServer(s grpc.ServiceRegistrar, srv ExploreServiceServer) {
	s.RegisterService(&ExploreService_ServiceDesc, srv)
}

type ExploreServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExploreServiceClient(cc grpc.ClientConnInterface) *ExploreServiceClient {
	return &ExploreServiceClient{cc: cc}
}

func (c *ExploreServiceClient) ListLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error) {
	return invoke[ListLikedYouResponse](ctx, c.cc, ExploreService_ListLikedYou_FullMethodName, in, opts)
}
func (c *ExploreServiceClient) ListNewLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error) {
	return invoke[ListLikedYouResponse](ctx, c.cc, ExploreService_ListNewLikedYou_FullMethodName, in, opts)
}
func (c *ExploreServiceClient) CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error) {
	return invoke[CountLikedYouResponse](ctx, c.cc, ExploreService_CountLikedYou_FullMethodName, in, opts)
}
func (c *ExploreServiceClient) PutDecision(ctx context.Context, in *PutDecisionRequest, opts ...grpc.CallOption) (*PutDecisionResponse, error) {
	return invoke[PutDecisionResponse](ctx, c.cc, ExploreService_PutDecision_FullMethodName, in, opts)
}

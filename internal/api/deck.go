package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

const (
	DeckService_StartSession_FullMethodName  = "/shubhvivah.deck.DeckService/StartSession"
	DeckService_GetState_FullMethodName      = "/shubhvivah.deck.DeckService/GetState"
	DeckService_BeginGesture_FullMethodName  = "/shubhvivah.deck.DeckService/BeginGesture"
	DeckService_Drag_FullMethodName          = "/shubhvivah.deck.DeckService/Drag"
	DeckService_Release_FullMethodName       = "/shubhvivah.deck.DeckService/Release"
	DeckService_CancelGesture_FullMethodName = "/shubhvivah.deck.DeckService/CancelGesture"
	DeckService_Pass_FullMethodName          = "/shubhvivah.deck.DeckService/Pass"
	DeckService_Like_FullMethodName          = "/shubhvivah.deck.DeckService/Like"
	DeckService_SuperLike_FullMethodName     = "/shubhvivah.deck.DeckService/SuperLike"
	DeckService_Rewind_FullMethodName        = "/shubhvivah.deck.DeckService/Rewind"
	DeckService_FinishExit_FullMethodName    = "/shubhvivah.deck.DeckService/FinishExit"
	DeckService_EndSession_FullMethodName    = "/shubhvivah.deck.DeckService/EndSession"
)

type StartSessionRequest struct {
	UserID string `json:"user_id"`
}

type SessionRequest struct {
	SessionID string `json:"session_id"`
}

type DragRequest struct {
	SessionID   string       `json:"session_id"`
	Translation swipe.Vector `json:"translation"`
	Velocity    swipe.Vector `json:"velocity"`
}

type ReleaseRequest struct {
	SessionID string       `json:"session_id"`
	Velocity  swipe.Vector `json:"velocity"`
}

// DeckState is a snapshot of one swipe session.
type DeckState struct {
	SessionID string                  `json:"session_id"`
	UserID    string                  `json:"user_id"`
	State     string                  `json:"state"`
	Active    *swipe.CandidateProfile `json:"active,omitempty"`
	Next      *swipe.CandidateProfile `json:"next,omitempty"`
	Pending   int                     `json:"pending"`
	CanRewind bool                    `json:"can_rewind"`
	Exhausted bool                    `json:"exhausted"`
	History   []swipe.Decision        `json:"history,omitempty"`
}

// DeckResponse is returned by every deck call. Accepted=false with a Reason
// reports an operation the deck refused without changing state.
type DeckResponse struct {
	Accepted   bool            `json:"accepted"`
	Reason     string          `json:"reason,omitempty"`
	Decision   *swipe.Decision `json:"decision,omitempty"`
	Preview    *swipe.Preview  `json:"preview,omitempty"`
	ExitOffset *swipe.Vector   `json:"exit_offset,omitempty"`
	Matched    bool            `json:"matched,omitempty"`
	Events     []swipe.Event   `json:"events,omitempty"`
	Deck       *DeckState      `json:"deck,omitempty"`
}

// DeckServiceServer is the server API for the swipe deck.
type DeckServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*DeckResponse, error)
	GetState(context.Context, *SessionRequest) (*DeckResponse, error)
	BeginGesture(context.Context, *SessionRequest) (*DeckResponse, error)
	Drag(context.Context, *DragRequest) (*DeckResponse, error)
	Release(context.Context, *ReleaseRequest) (*DeckResponse, error)
	CancelGesture(context.Context, *SessionRequest) (*DeckResponse, error)
	Pass(context.Context, *SessionRequest) (*DeckResponse, error)
	Like(context.Context, *SessionRequest) (*DeckResponse, error)
	SuperLike(context.Context, *SessionRequest) (*DeckResponse, error)
	Rewind(context.Context, *SessionRequest) (*DeckResponse, error)
	FinishExit(context.Context, *SessionRequest) (*DeckResponse, error)
	EndSession(context.Context, *SessionRequest) (*DeckResponse, error)
}

// UnimplementedDeckServiceServer can be embedded for forward compatibility.
type UnimplementedDeckServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedDeckServiceServer) StartSession(context.Context, *StartSessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("StartSession")
}
func (UnimplementedDeckServiceServer) GetState(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("GetState")
}
func (UnimplementedDeckServiceServer) BeginGesture(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("BeginGesture")
}
func (UnimplementedDeckServiceServer) Drag(context.Context, *DragRequest) (*DeckResponse, error) {
	return nil, unimplemented("Drag")
}
func (UnimplementedDeckServiceServer) Release(context.Context, *ReleaseRequest) (*DeckResponse, error) {
	return nil, unimplemented("Release")
}
func (UnimplementedDeckServiceServer) CancelGesture(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("CancelGesture")
}
func (UnimplementedDeckServiceServer) Pass(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("Pass")
}
func (UnimplementedDeckServiceServer) Like(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("Like")
}
func (UnimplementedDeckServiceServer) SuperLike(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("SuperLike")
}
func (UnimplementedDeckServiceServer) Rewind(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("Rewind")
}
func (UnimplementedDeckServiceServer) FinishExit(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("FinishExit")
}
func (UnimplementedDeckServiceServer) EndSession(context.Context, *SessionRequest) (*DeckResponse, error) {
	return nil, unimplemented("EndSession")
}

type deckSrv = DeckServiceServer

// DeckService_ServiceDesc is the grpc.ServiceDesc for the deck service.
var DeckService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shubhvivah.deck.DeckService",
	HandlerType: (*DeckServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartSession", Handler: unary(DeckService_StartSession_FullMethodName, deckSrv.StartSession)},
		{MethodName: "GetState", Handler: unary(DeckService_GetState_FullMethodName, deckSrv.GetState)},
		{MethodName: "BeginGesture", Handler: unary(DeckService_BeginGesture_FullMethodName, deckSrv.BeginGesture)},
		{MethodName: "Drag", Handler: unary(DeckService_Drag_FullMethodName, deckSrv.Drag)},
		{MethodName: "Release", Handler: unary(DeckService_Release_FullMethodName, deckSrv.Release)},
		{MethodName: "CancelGesture", Handler: unary(DeckService_CancelGesture_FullMethodName, deckSrv.CancelGesture)},
		{MethodName: "Pass", Handler: unary(DeckService_Pass_FullMethodName, deckSrv.Pass)},
		{MethodName: "Like", Handler: unary(DeckService_Like_FullMethodName, deckSrv.Like)},
		{MethodName: "SuperLike", Handler: unary(DeckService_SuperLike_FullMethodName, deckSrv.SuperLike)},
		{MethodName: "Rewind", Handler: unary(DeckService_Rewind_FullMethodName, deckSrv.Rewind)},
		{MethodName: "FinishExit", Handler: unary(DeckService_FinishExit_FullMethodName, deckSrv.FinishExit)},
		{MethodName: "EndSession", Handler: unary(DeckService_EndSession_FullMethodName, deckSrv.EndSession)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "deck.proto",
}

func RegisterDeckServiceServer(s grpc.ServiceRegistrar, srv DeckServiceServer) {
	s.RegisterService(&DeckService_ServiceDesc, srv)
}

// DeckServiceClient is the client API for the swipe deck.
type DeckServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDeckServiceClient(cc grpc.ClientConnInterface) *DeckServiceClient {
	return &DeckServiceClient{cc: cc}
}

func (c *DeckServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_StartSession_FullMethodName, in, opts)
}
func (c *DeckServiceClient) GetState(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_GetState_FullMethodName, in, opts)
}
func (c *DeckServiceClient) BeginGesture(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_BeginGesture_FullMethodName, in, opts)
}
func (c *DeckServiceClient) Drag(ctx context.Context, in *DragRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_Drag_FullMethodName, in, opts)
}
func (c *DeckServiceClient) Release(ctx context.Context, in *ReleaseRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_Release_FullMethodName, in, opts)
}
func (c *DeckServiceClient) CancelGesture(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_CancelGesture_FullMethodName, in, opts)
}
func (c *DeckServiceClient) Pass(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_Pass_FullMethodName, in, opts)
}
func (c *DeckServiceClient) Like(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_Like_FullMethodName, in, opts)
}
func (c *DeckServiceClient) SuperLike(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_SuperLike_FullMethodName, in, opts)
}
func (c *DeckServiceClient) Rewind(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_Rewind_FullMethodName, in, opts)
}
func (c *DeckServiceClient) FinishExit(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_FinishExit_FullMethodName, in, opts)
}
func (c *DeckServiceClient) EndSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeckResponse, error) {
	return invoke[DeckResponse](ctx, c.cc, DeckService_EndSession_FullMethodName, in, opts)
}

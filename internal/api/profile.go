package api

import (
	"context"
	"encoding/json"
	"time"

	"google.golang.org/grpc"
)

const (
	ProfileService_StartWizard_FullMethodName = "/shubhvivah.profile.ProfileService/StartWizard"
	ProfileService_SubmitStep_FullMethodName  = "/shubhvivah.profile.ProfileService/SubmitStep"
	ProfileService_Back_FullMethodName        = "/shubhvivah.profile.ProfileService/Back"
	ProfileService_Complete_FullMethodName    = "/shubhvivah.profile.ProfileService/Complete"
	ProfileService_EndWizard_FullMethodName   = "/shubhvivah.profile.ProfileService/EndWizard"
)

type StartWizardRequest struct {
	UserID string `json:"user_id"`
}

type WizardRequest struct {
	WizardID string `json:"wizard_id"`
}

// SubmitStepRequest carries the step's form as raw JSON; Step must name the
// wizard's current step.
type SubmitStepRequest struct {
	WizardID string          `json:"wizard_id"`
	Step     string          `json:"step"`
	Payload  json.RawMessage `json:"payload"`
}

type ProfileSummary struct {
	UserID      string     `json:"user_id"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	City        string     `json:"city,omitempty"`
	Religion    string     `json:"religion,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// WizardResponse reports where the wizard stands. Errors holds per-field
// messages when a submitted step failed validation.
type WizardResponse struct {
	WizardID string            `json:"wizard_id"`
	Step     string            `json:"step"`
	Visited  []string          `json:"visited"`
	Accepted bool              `json:"accepted"`
	Reason   string            `json:"reason,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
	Profile  *ProfileSummary   `json:"profile,omitempty"`
}

// ProfileServiceServer is the server API for profile completion.
type ProfileServiceServer interface {
	StartWizard(context.Context, *StartWizardRequest) (*WizardResponse, error)
	SubmitStep(context.Context, *SubmitStepRequest) (*WizardResponse, error)
	Back(context.Context, *WizardRequest) (*WizardResponse, error)
	Complete(context.Context, *WizardRequest) (*WizardResponse, error)
	EndWizard(context.Context, *WizardRequest) (*WizardResponse, error)
}

type UnimplementedProfileServiceServer struct{}

func (UnimplementedProfileServiceServer) StartWizard(context.Context, *StartWizardRequest) (*WizardResponse, error) {
	return nil, unimplemented("StartWizard")
}
func (UnimplementedProfileServiceServer) SubmitStep(context.Context, *SubmitStepRequest) (*WizardResponse, error) {
	return nil, unimplemented("SubmitStep")
}
func (UnimplementedProfileServiceServer) Back(context.Context, *WizardRequest) (*WizardResponse, error) {
	return nil, unimplemented("Back")
}
func (UnimplementedProfileServiceServer) Complete(context.Context, *WizardRequest) (*WizardResponse, error) {
	return nil, unimplemented("Complete")
}
func (UnimplementedProfileServiceServer) EndWizard(context.Context, *WizardRequest) (*WizardResponse, error) {
	return nil, unimplemented("EndWizard")
}

type profileSrv = ProfileServiceServer

var ProfileService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shubhvivah.profile.ProfileService",
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartWizard", Handler: unary(ProfileService_StartWizard_FullMethodName, profileSrv.StartWizard)},
		{MethodName: "SubmitStep", Handler: unary(ProfileService_SubmitStep_FullMethodName, profileSrv.SubmitStep)},
		{MethodName: "Back", Handler: unary(ProfileService_Back_FullMethodName, profileSrv.Back)},
		{MethodName: "Complete", Handler: unary(ProfileService_Complete_FullMethodName, profileSrv.Complete)},
		{MethodName: "EndWizard", Handler: unary(ProfileService_EndWizard_FullMethodName, profileSrv.EndWizard)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "profile.proto",
}

func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	s.RegisterService(&ProfileService_ServiceDesc, srv)
}

type ProfileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfileServiceClient(cc grpc.ClientConnInterface) *ProfileServiceClient {
	return &ProfileServiceClient{cc: cc}
}

func (c *ProfileServiceClient) StartWizard(ctx context.Context, in *StartWizardRequest, opts ...grpc.CallOption) (*WizardResponse, error) {
	return invoke[WizardResponse](ctx, c.cc, ProfileService_StartWizard_FullMethodName, in, opts)
}
func (c *ProfileServiceClient) SubmitStep(ctx context.Context, in *SubmitStepRequest, opts ...grpc.CallOption) (*WizardResponse, error) {
	return invoke[WizardResponse](ctx, c.cc, ProfileService_SubmitStep_FullMethodName, in, opts)
}
func (c *ProfileServiceClient) Back(ctx context.Context, in *WizardRequest, opts ...grpc.CallOption) (*WizardResponse, error) {
	return invoke[WizardResponse](ctx, c.cc, ProfileService_Back_FullMethodName, in, opts)
}
func (c *ProfileServiceClient) Complete(ctx context.Context, in *WizardRequest, opts ...grpc.CallOption) (*WizardResponse, error) {
	return invoke[WizardResponse](ctx, c.cc, ProfileService_Complete_FullMethodName, in, opts)
}
func (c *ProfileServiceClient) EndWizard(ctx context.Context, in *WizardRequest, opts ...grpc.CallOption) (*WizardResponse, error) {
	return invoke[WizardResponse](ctx, c.cc, ProfileService_EndWizard_FullMethodName, in, opts)
}

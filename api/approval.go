package api

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

const approvalService = "ApprovalService"

var (
	ApprovalService_CreateApproval_FullMethodName = fullMethod(approvalService, "CreateApproval")
	ApprovalService_Approve_FullMethodName        = fullMethod(approvalService, "Approve")
	ApprovalService_Reject_FullMethodName         = fullMethod(approvalService, "Reject")
	ApprovalService_ListPending_FullMethodName    = fullMethod(approvalService, "ListPending")
	ApprovalService_CountPending_FullMethodName   = fullMethod(approvalService, "CountPending")
)

type Approval struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shopId"`
	Status    string    `json:"status"`
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateApprovalRequest struct {
	ShopID string `json:"shopId"`
}

type CreateApprovalResponse struct {
	Approval *Approval `json:"approval"`
}

type ApproveRequest struct {
	ShopID string `json:"shopId"`
}

type ApproveResponse struct {
	Approval *Approval `json:"approval"`
}

type RejectRequest struct {
	ShopID string `json:"shopId"`
	Reason string `json:"reason"`
}

type RejectResponse struct {
	Approval *Approval `json:"approval"`
}

type ListPendingRequest struct{}

type ListPendingResponse struct {
	Approvals []*Approval `json:"approvals"`
}

type CountPendingRequest struct{}

type CountPendingResponse struct {
	Count int64 `json:"count"`
}

type ApprovalServiceServer interface {
	CreateApproval(context.Context, *CreateApprovalRequest) (*CreateApprovalResponse, error)
	Approve(context.Context, *ApproveRequest) (*ApproveResponse, error)
	Reject(context.Context, *RejectRequest) (*RejectResponse, error)
	ListPending(context.Context, *ListPendingRequest) (*ListPendingResponse, error)
	CountPending(context.Context, *CountPendingRequest) (*CountPendingResponse, error)
}

func RegisterApprovalServiceServer(s grpc.ServiceRegistrar, srv ApprovalServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: packageName + "." + approvalService,
		HandlerType: (*ApprovalServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			unary(approvalService, "CreateApproval", ApprovalServiceServer.CreateApproval),
			unary(approvalService, "Approve", ApprovalServiceServer.Approve),
			unary(approvalService, "Reject", ApprovalServiceServer.Reject),
			unary(approvalService, "ListPending", ApprovalServiceServer.ListPending),
			unary(approvalService, "CountPending", ApprovalServiceServer.CountPending),
		},
		Metadata: "approval",
	}, srv)
}

type ApprovalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewApprovalServiceClient(cc grpc.ClientConnInterface) *ApprovalServiceClient {
	return &ApprovalServiceClient{cc}
}

func (c *ApprovalServiceClient) CreateApproval(ctx context.Context, in *CreateApprovalRequest, opts ...grpc.CallOption) (*CreateApprovalResponse, error) {
	return invoke[CreateApprovalResponse](ctx, c.cc, ApprovalService_CreateApproval_FullMethodName, in, opts)
}

func (c *ApprovalServiceClient) Approve(ctx context.Context, in *ApproveRequest, opts ...grpc.CallOption) (*ApproveResponse, error) {
	return invoke[ApproveResponse](ctx, c.cc, ApprovalService_Approve_FullMethodName, in, opts)
}

func (c *ApprovalServiceClient) Reject(ctx context.Context, in *RejectRequest, opts ...grpc.CallOption) (*RejectResponse, error) {
	return invoke[RejectResponse](ctx, c.cc, ApprovalService_Reject_FullMethodName, in, opts)
}

func (c *ApprovalServiceClient) ListPending(ctx context.Context, in *ListPendingRequest, opts ...grpc.CallOption) (*ListPendingResponse, error) {
	return invoke[ListPendingResponse](ctx, c.cc, ApprovalService_ListPending_FullMethodName, in, opts)
}

func (c *ApprovalServiceClient) CountPending(ctx context.Context, in *CountPendingRequest, opts ...grpc.CallOption) (*CountPendingResponse, error) {
	return invoke[CountPendingResponse](ctx, c.cc, ApprovalService_CountPending_FullMethodName, in, opts)
}

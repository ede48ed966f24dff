package model

import (
	"time"

	"github.com/abhishek622/streetsmart/api"
)

// ApprovalID defines an approval id.
type ApprovalID string

// Status defines the state of an approval. Only StatusPending can change.
type Status string

const (
	StatusPending  = Status("PENDING")
	StatusApproved = Status("APPROVED")
	StatusRejected = Status("REJECTED")
)

// Approval defines the review of a newly registered shop. There is exactly
// one approval per shop.
type Approval struct {
	ID        ApprovalID `json:"id"`
	ShopID    string     `json:"shopId"`
	Status    Status     `json:"status"`
	Approved  bool       `json:"approved"`
	Reason    string     `json:"reason,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Terminal reports whether the approval has been decided.
func (a *Approval) Terminal() bool {
	return a.Status != StatusPending
}

// ApprovalToAPI converts an Approval struct into its wire counterpart.
func ApprovalToAPI(a *Approval) *api.Approval {
	return &api.Approval{
		ID:        string(a.ID),
		ShopID:    a.ShopID,
		Status:    string(a.Status),
		Approved:  a.Approved,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

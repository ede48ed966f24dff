// Package gateway declares the store contracts the coordinators depend on.
// Every call forwards the caller's credential unchanged.
package gateway

import (
	"context"

	"github.com/abhishek622/streetsmart/pkg/auth"
	shopmodel "github.com/abhishek622/streetsmart/shop/pkg/model"
	usermodel "github.com/abhishek622/streetsmart/user/pkg/model"
)

//go:generate mockgen -destination=mock/gateway.go -package=mock . UserStore,ShopStore

// UserStore is the client contract of the user service.
type UserStore interface {
	// Get returns a user with its projection, or a consistency.NotFoundError
	// of kind user.
	Get(ctx context.Context, id usermodel.UserID, cred auth.Credential) (*usermodel.User, error)
	// ReplaceProjection overwrites the projection read at p.Version and
	// returns the new version.
	ReplaceProjection(ctx context.Context, id usermodel.UserID, p usermodel.Projection, cred auth.Credential) (int64, error)
}

// ShopStore is the client contract of the shop service.
type ShopStore interface {
	Exists(ctx context.Context, id shopmodel.ShopID, cred auth.Credential) (bool, error)
	// GetBasicInfo returns the display name of a shop.
	GetBasicInfo(ctx context.Context, id shopmodel.ShopID, cred auth.Credential) (string, error)
	Get(ctx context.Context, id shopmodel.ShopID, cred auth.Credential) (*shopmodel.Shop, error)
	ReplaceRatingIDs(ctx context.Context, id shopmodel.ShopID, ratingIDs []string, version int64, cred auth.Credential) (int64, error)
	SetStatus(ctx context.Context, id shopmodel.ShopID, status shopmodel.Status, cred auth.Credential) error
}

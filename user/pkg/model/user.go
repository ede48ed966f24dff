package model

import "github.com/abhishek622/streetsmart/api"

// UserID defines a user id.
type UserID string

// Role defines a user role.
type Role string

const (
	RoleCustomer  = Role("CUSTOMER")
	RoleShopOwner = Role("SHOP_OWNER")
	RoleAdmin     = Role("ADMIN")
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleShopOwner, RoleAdmin:
		return true
	}
	return false
}

// User defines a user together with its relationship projection.
// RatingIDs and FavoriteShopIDs are replicas of the rating and favorite
// stores, mutated only by the coordinators.
type User struct {
	ID              UserID   `json:"id"`
	Email           string   `json:"email"`
	FullName        string   `json:"fullName"`
	Role            Role     `json:"role"`
	RatingIDs       []string `json:"ratingIds"`
	FavoriteShopIDs []string `json:"favoriteShopIds"`
	Version         int64    `json:"version"`
}

// Projection defines the replicated relationship lists of a user.
type Projection struct {
	RatingIDs       []string
	FavoriteShopIDs []string
	Version         int64
}

// Projection returns the relationship lists of the user.
func (u *User) Projection() Projection {
	return Projection{RatingIDs: u.RatingIDs, FavoriteShopIDs: u.FavoriteShopIDs, Version: u.Version}
}

// UserToAPI converts a User struct into its wire counterpart.
func UserToAPI(u *User) *api.User {
	return &api.User{
		ID:              string(u.ID),
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            string(u.Role),
		RatingIDs:       u.RatingIDs,
		FavoriteShopIDs: u.FavoriteShopIDs,
		Version:         u.Version,
	}
}

// UserFromAPI converts a wire user into a User struct.
func UserFromAPI(u *api.User) *User {
	return &User{
		ID:              UserID(u.ID),
		Email:           u.Email,
		FullName:        u.FullName,
		Role:            Role(u.Role),
		RatingIDs:       u.RatingIDs,
		FavoriteShopIDs: u.FavoriteShopIDs,
		Version:         u.Version,
	}
}

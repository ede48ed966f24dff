package model

import (
	"fmt"
	"time"

	"github.com/abhishek622/streetsmart/api"
)

// FavoriteID defines a favorite id.
type FavoriteID string

// Favorite defines a shop marked as favorite by a user.
type Favorite struct {
	ID        FavoriteID `json:"id"`
	UserID    string     `json:"userId"`
	ShopID    string     `json:"shopId"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Entry is a favorite together with the display name of its shop.
type Entry struct {
	Favorite
	ShopName string `json:"shopName"`
}

// EntryToAPI converts an Entry into its wire counterpart.
func EntryToAPI(e *Entry) *api.Favorite {
	return &api.Favorite{
		ID:       string(e.ID),
		UserID:   e.UserID,
		ShopID:   e.ShopID,
		ShopName: e.ShopName,
	}
}

// DuplicatePolicy selects what adding an already favorite shop does.
type DuplicatePolicy string

const (
	// DuplicateToggle removes the existing favorite instead.
	DuplicateToggle = DuplicatePolicy("toggle")
	// DuplicateReject fails with a conflict.
	DuplicateReject = DuplicatePolicy("reject")
)

// ParseDuplicatePolicy parses a configured policy. Empty selects DuplicateToggle.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(s); p {
	case "":
		return DuplicateToggle, nil
	case DuplicateToggle, DuplicateReject:
		return p, nil
	}
	return "", fmt.Errorf("unknown duplicate policy %q", s)
}

package model

import "github.com/abhishek622/streetsmart/api"

// ShopID defines a shop id.
type ShopID string

// Status defines the lifecycle status of a shop.
type Status string

const (
	StatusPending  = Status("PENDING")
	StatusApproved = Status("APPROVED")
	StatusRejected = Status("REJECTED")
	StatusActive   = Status("ACTIVE")
	StatusInactive = Status("INACTIVE")
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusActive, StatusInactive:
		return true
	}
	return false
}

// Shop defines a shop. RatingIDs is a replica of the rating store.
type Shop struct {
	ID          ShopID   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"ownerId"`
	Status      Status   `json:"status"`
	RatingIDs   []string `json:"ratingIds"`
	Version     int64    `json:"version"`
}

// ShopToAPI converts a Shop struct into its wire counterpart.
func ShopToAPI(s *Shop) *api.Shop {
	return &api.Shop{
		ID:          string(s.ID),
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Address:     s.Address,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		OwnerID:     s.OwnerID,
		Status:      string(s.Status),
		RatingIDs:   s.RatingIDs,
		Version:     s.Version,
	}
}

// ShopFromAPI converts a wire shop into a Shop struct.
func ShopFromAPI(s *api.Shop) *Shop {
	return &Shop{
		ID:          ShopID(s.ID),
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Address:     s.Address,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		OwnerID:     s.OwnerID,
		Status:      Status(s.Status),
		RatingIDs:   s.RatingIDs,
		Version:     s.Version,
	}
}

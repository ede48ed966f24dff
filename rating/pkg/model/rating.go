package model

import (
	"time"

	"github.com/abhishek622/streetsmart/api"
)

// RatingID defines a rating id.
type RatingID string

// Score defines a rating score.
type Score int

const (
	MinScore Score = 1
	MaxScore Score = 5
)

// Valid reports whether the score is within [MinScore, MaxScore].
func (s Score) Valid() bool {
	return s >= MinScore && s <= MaxScore
}

// Rating defines an individual rating of a shop by a user.
type Rating struct {
	ID        RatingID  `json:"id"`
	AuthorID  string    `json:"authorId"`
	ShopID    string    `json:"shopId"`
	Score     Score     `json:"score"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RatingToAPI converts a Rating struct into its wire counterpart.
func RatingToAPI(r *Rating) *api.Rating {
	return &api.Rating{
		ID:        string(r.ID),
		AuthorID:  r.AuthorID,
		ShopID:    r.ShopID,
		Score:     int32(r.Score),
		Review:    r.Review,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// RatingFromAPI converts a wire rating into a Rating struct.
func RatingFromAPI(r *api.Rating) *Rating {
	return &Rating{
		ID:        RatingID(r.ID),
		AuthorID:  r.AuthorID,
		ShopID:    r.ShopID,
		Score:     Score(r.Score),
		Review:    r.Review,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

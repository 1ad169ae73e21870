package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchEvent records one served proximity search.
type SearchEvent struct {
	ID           uuid.UUID `json:"id"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	RadiusMeters float64   `json:"radius_meters"`
	ResultCount  int       `json:"result_count"`
	SearchedAt   time.Time `json:"searched_at"`
}

type SearchStats struct {
	Searches      int64 `json:"searches"`
	EmptySearches int64 `json:"empty_searches"`
	Minutes       int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}

package domain

import (
	"time"

	"equipmentCentral/pkg/geo"

	"github.com/google/uuid"
)

// Operator is a business offering equipment for rent from one service origin.
type Operator struct {
	ID            uuid.UUID  `json:"id"`
	BusinessName  string     `json:"business_name"`
	ABN           string     `json:"abn,omitempty"`
	AddressLine   string     `json:"address_line"`
	Suburb        string     `json:"suburb"`
	State         string     `json:"state"`
	Postcode      string     `json:"postcode"`
	Lat           float64    `json:"latitude"`
	Lng           float64    `json:"longitude"`
	ServiceRadius float64    `json:"service_radius"` // meters, informational
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

func (o Operator) Point() geo.Point {
	return geo.Point{Lat: o.Lat, Lng: o.Lng}
}

func (o Operator) Summary() OperatorSummary {
	return OperatorSummary{
		ID:           o.ID,
		BusinessName: o.BusinessName,
		Suburb:       o.Suburb,
		State:        o.State,
	}
}

type OperatorSummary struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	Suburb       string    `json:"suburb"`
	State        string    `json:"state"`
}

// OperatorHit is an operator matched by a proximity lookup.
type OperatorHit struct {
	Operator       Operator
	DistanceMeters float64
}

type CreateOperatorRequest struct {
	BusinessName  string   `json:"business_name" validate:"required,max=200"`
	ABN           string   `json:"abn" validate:"omitempty,len=11,numeric"`
	AddressLine   string   `json:"address_line" validate:"max=300"`
	Suburb        string   `json:"suburb" validate:"max=100"`
	State         string   `json:"state" validate:"max=50"`
	Postcode      string   `json:"postcode" validate:"max=10"`
	Lat           *float64 `json:"latitude" validate:"required,lat"`
	Lng           *float64 `json:"longitude" validate:"required,lng"`
	ServiceRadius float64  `json:"service_radius" validate:"meters"`
}

type UpdateOperatorRequest struct {
	BusinessName  *string  `json:"business_name" validate:"omitempty,min=1,max=200"`
	ABN           *string  `json:"abn" validate:"omitempty,len=11,numeric"`
	AddressLine   *string  `json:"address_line" validate:"omitempty,max=300"`
	Suburb        *string  `json:"suburb" validate:"omitempty,max=100"`
	State         *string  `json:"state" validate:"omitempty,max=50"`
	Postcode      *string  `json:"postcode" validate:"omitempty,max=10"`
	Lat           *float64 `json:"latitude" validate:"omitempty,lat"`
	Lng           *float64 `json:"longitude" validate:"omitempty,lng"`
	ServiceRadius *float64 `json:"service_radius" validate:"omitempty,meters"`
}

type ListOperatorsResponse struct {
	Operators []*Operator `json:"operators"`
	Page      int         `json:"page"`
	Limit     int         `json:"limit"`
	Total     int64       `json:"total"`
}

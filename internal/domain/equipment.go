package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Equipment is a rentable item owned by exactly one operator.
type Equipment struct {
	ID                 uuid.UUID  `json:"id"`
	OperatorID         uuid.UUID  `json:"operator_id"`
	CategoryID         uuid.UUID  `json:"category_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	DailyRate          *float64   `json:"daily_rate"`
	WeeklyRate         *float64   `json:"weekly_rate"`
	MonthlyRate        *float64   `json:"monthly_rate"`
	AvailabilityStatus bool       `json:"availability_status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
}

func (e Equipment) Summary() EquipmentSummary {
	return EquipmentSummary{
		ID:                 e.ID,
		Name:               e.Name,
		Description:        e.Description,
		DailyRate:          e.DailyRate,
		WeeklyRate:         e.WeeklyRate,
		MonthlyRate:        e.MonthlyRate,
		AvailabilityStatus: e.AvailabilityStatus,
	}
}

type EquipmentSummary struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	DailyRate          *float64  `json:"daily_rate"`
	WeeklyRate         *float64  `json:"weekly_rate"`
	MonthlyRate        *float64  `json:"monthly_rate"`
	AvailabilityStatus bool      `json:"availability_status"`
}

type CreateEquipmentRequest struct {
	OperatorID         uuid.UUID `json:"operator_id" validate:"required"`
	CategoryID         uuid.UUID `json:"category_id" validate:"required"`
	Name               string    `json:"name" validate:"required,max=200"`
	Description        string    `json:"description" validate:"max=4000"`
	DailyRate          *float64  `json:"daily_rate" validate:"omitempty,gte=0"`
	WeeklyRate         *float64  `json:"weekly_rate" validate:"omitempty,gte=0"`
	MonthlyRate        *float64  `json:"monthly_rate" validate:"omitempty,gte=0"`
	AvailabilityStatus *bool     `json:"availability_status"`
}

type UpdateEquipmentRequest struct {
	CategoryID         *uuid.UUID `json:"category_id"`
	Name               *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description        *string    `json:"description" validate:"omitempty,max=4000"`
	DailyRate          RateUpdate `json:"daily_rate"`
	WeeklyRate         RateUpdate `json:"weekly_rate"`
	MonthlyRate        RateUpdate `json:"monthly_rate"`
	AvailabilityStatus *bool      `json:"availability_status"`
}

// RateUpdate distinguishes a missing field (Set false) from an explicit null,
// which clears the rate.
type RateUpdate struct {
	Set   bool
	Value *float64
}

func SetRate(v float64) RateUpdate { return RateUpdate{Set: true, Value: &v} }

func ClearRate() RateUpdate { return RateUpdate{Set: true} }

func (u *RateUpdate) UnmarshalJSON(b []byte) error {
	u.Set = true
	u.Value = nil
	if string(b) == "null" {
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v < 0 {
		return errors.New("rate must be >= 0")
	}
	u.Value = &v
	return nil
}

// Apply returns the rate after the update.
func (u RateUpdate) Apply(current *float64) *float64 {
	if !u.Set {
		return current
	}
	return u.Value
}

package postgres

import (
	"equipmentCentral/internal/service"
	"equipmentCentral/internal/workers"
)

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

var (
	_ service.OperatorRepository  = (*Operators)(nil)
	_ service.OperatorStore       = (*Operators)(nil)
	_ service.EquipmentRepository = (*EquipmentRepo)(nil)
	_ service.EquipmentStore      = (*EquipmentRepo)(nil)
	_ service.StatsRepository     = (*SearchLogRepo)(nil)
	_ workers.SearchLogStore      = (*SearchLogRepo)(nil)
)

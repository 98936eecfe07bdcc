package model

import "oceanview/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldType     = "type"
	FieldBaseRate = "base_rate"
	FieldStatus   = "status"
	FieldClean    = "clean"
)

const (
	StatusAvailable        = "AVAILABLE"
	StatusReserved         = "RESERVED"
	StatusOccupied         = "OCCUPIED"
	StatusUnderMaintenance = "UNDER_MAINTENANCE"
)

const (
	TypeStandard = "STANDARD"
	TypeDeluxe   = "DELUXE"
	TypeSuite    = "SUITE"
)

type Room struct {
	ID       string  `db:"id"`
	Number   string  `db:"number"`
	Type     string  `db:"type"`
	BaseRate float64 `db:"base_rate"`
	Status   string  `db:"status"`
	Clean    bool    `db:"clean"`
	model.Metadata
}

// Bookable reports whether the room can accept a new reservation at all.
// Date conflicts are checked separately against the reservation ledger.
func (r *Room) Bookable() bool {
	return r.Status != StatusUnderMaintenance
}

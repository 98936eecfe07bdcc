package dto

import (
	"github.com/google/uuid"

	"oceanview/internal/domains/room/model"
	"oceanview/shared"
	gDto "oceanview/shared/dto"
	gModel "oceanview/shared/model"
	"oceanview/shared/timezone"
)

type CreateRoomRequest struct {
	Number   string  `json:"number"    validate:"required,max=10"`
	Type     string  `json:"type"      validate:"required,oneof=STANDARD DELUXE SUITE"`
	BaseRate float64 `json:"base_rate" validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:       uuid.NewString(),
		Number:   c.Number,
		Type:     c.Type,
		BaseRate: c.BaseRate,
		Status:   model.StatusAvailable,
		Clean:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Type     string   `db:"type"      json:"type"      validate:"omitempty,oneof=STANDARD DELUXE SUITE"`
	BaseRate *float64 `db:"base_rate" json:"base_rate" validate:"omitempty,gt=0"`
	Clean    *bool    `db:"clean"     json:"clean"     validate:"omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE RESERVED OCCUPIED UNDER_MAINTENANCE"`
}

type RoomResponse struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	Type     string  `json:"type"`
	BaseRate float64 `json:"base_rate"`
	Status   string  `json:"status"`
	Clean    bool    `json:"clean"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.BaseRate = model.BaseRate
	r.Status = model.Status
	r.Clean = model.Clean
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type OccupancyResponse struct {
	TotalRooms    int     `json:"total_rooms"`
	Occupied      int     `json:"occupied"`
	Reserved      int     `json:"reserved"`
	Available     int     `json:"available"`
	Maintenance   int     `json:"maintenance"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

package dto

import (
	"github.com/google/uuid"

	"oceanview/internal/domains/guest/model"
	"oceanview/shared"
	gDto "oceanview/shared/dto"
	gModel "oceanview/shared/model"
	"oceanview/shared/timezone"
)

type RegisterGuestRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	NationalID string `json:"national_id" validate:"required,max=50"`
	Email      string `json:"email"       validate:"omitempty,email,max=100"`
	Phone      string `json:"phone"       validate:"omitempty,max=20"`
	Address    string `json:"address"     validate:"omitempty,max=200"`
}

func (c *RegisterGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:         uuid.NewString(),
		Name:       c.Name,
		NationalID: c.NationalID,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Email   string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Phone   string `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Address string `db:"address" json:"address" validate:"omitempty,max=200"`
}

type GuestResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.NationalID = model.NationalID
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

package model

import "oceanview/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID         = "id"
	FieldName       = "name"
	FieldNationalID = "national_id"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldAddress    = "address"
)

type Guest struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	NationalID string `db:"national_id"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	model.Metadata
}

package models

// User represents a registered kiosk user. The record is provisioned by an
// external administrative process; this service only reads it.
//
// Optional columns are pointers so JSON output carries explicit nulls, the
// shape kiosk clients already integrate against. CreatedAt is kept as the
// raw DATETIME text from MySQL (the DSN does not set parseTime).
type User struct {
	UserID          string  `json:"user_id" db:"user_id"`
	Name            string  `json:"name" db:"name"`
	PhoneNumber     *string `json:"phone_number" db:"phone_number"`
	District        *string `json:"district" db:"district"`
	Village         *string `json:"village" db:"village"`
	Region          *string `json:"region" db:"region"`
	ClientCode      *string `json:"client_code" db:"client_code"`
	Mandal          *string `json:"mandal" db:"mandal"`
	ProfileImageURL *string `json:"profile_image_url" db:"profile_image_url"`
	CreatedAt       *string `json:"created_at" db:"created_at"`
	CardUID         *string `json:"card_uid" db:"card_uid"`
}

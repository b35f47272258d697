package models

import "oasis/src/types"

type Guest struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Email       string `gorm:"uniqueIndex" json:"email,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	CountryFlag string `json:"country_flag,omitempty"`
	NationalID  string `json:"national_id,omitempty"`
	UID         string `json:"uid,omitempty"`

	Bookings []Booking `gorm:"foreignKey:guest_id" json:"bookings,omitempty"`

	types.Timestamps
}

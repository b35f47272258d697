package models

import "oasis/src/types"

// Setting is a single-row table holding sitewide booking policy values.
// The action layer does not enforce MaxGuestsPerBooking; it is exposed so
// clients can.
type Setting struct {
	ID                  uint    `gorm:"primarykey" json:"id"`
	MinBookingLength    uint    `json:"min_booking_length,omitempty"`
	MaxBookingLength    uint    `json:"max_booking_length,omitempty"`
	MaxGuestsPerBooking uint    `json:"max_guests_per_booking,omitempty"`
	BreakfastPrice      float32 `json:"breakfast_price,omitempty"`

	types.Timestamps
}

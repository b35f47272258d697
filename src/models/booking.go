package models

import (
	"time"

	"oasis/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID           uint                `gorm:"primarykey" json:"id"`
	GuestID      uint                `json:"guest_id,omitempty"`
	CabinID      uint                `json:"cabin_id,omitempty"`
	StartDate    time.Time           `json:"start_date,omitempty"`
	EndDate      time.Time           `json:"end_date,omitempty"`
	NumNights    uint                `json:"num_nights,omitempty"`
	NumGuests    uint                `json:"num_guests,omitempty"`
	Observations string              `json:"observations,omitempty"`
	CabinPrice   float32             `json:"cabin_price,omitempty"`
	ExtrasPrice  float32             `json:"extras_price"`
	TotalPrice   float32             `json:"total_price,omitempty"`
	IsPaid       bool                `json:"is_paid"`
	HasBreakfast bool                `json:"has_breakfast"`
	Status       types.BookingStatus `gorm:"default:'unconfirmed'" json:"status,omitempty"`
	Reference    uuid.UUID           `gorm:"type:uuid" json:"reference,omitempty"`

	Guest *Guest `gorm:"foreignKey:guest_id" json:"guest,omitempty"`
	Cabin *Cabin `gorm:"foreignKey:cabin_id" json:"cabin,omitempty"`

	types.Timestamps
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Reference == uuid.Nil {
		b.Reference = uuid.New()
	}
	return nil
}

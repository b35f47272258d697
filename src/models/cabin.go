package models

import (
	"oasis/src/types"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Cabin struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	Name         string  `json:"name,omitempty"`
	Slug         string  `gorm:"uniqueIndex" json:"slug,omitempty"`
	MaxCapacity  uint    `json:"max_capacity,omitempty"`
	RegularPrice float32 `json:"regular_price,omitempty"`
	Discount     float32 `json:"discount"`
	Description  string  `json:"description,omitempty"`
	Image        string  `json:"image,omitempty"`

	Bookings []Booking `gorm:"foreignKey:cabin_id" json:"bookings,omitempty"`

	types.Timestamps
}

func (c *Cabin) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}

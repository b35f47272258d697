package types

import (
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type BookingStatus string

const (
	BOOKING_UNCONFIRMED BookingStatus = "unconfirmed"
	BOOKING_CONFIRMED   BookingStatus = "confirmed"
	BOOKING_CHECKED_IN  BookingStatus = "checked-in"
	BOOKING_CHECKED_OUT BookingStatus = "checked-out"
)

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type SignInRequestBody struct {
	Email string `json:"email" binding:"required"`
}

// CreateBookingRequestBody carries the guest-editable half of a new booking.
// Price fields are never read from the request; they are derived from the
// cabin row on the server.
type CreateBookingRequestBody struct {
	NumGuests    uint   `form:"num_guests" json:"num_guests" binding:"required"`
	Observations string `form:"observations" json:"observations,omitempty"`
	StartDate    string `form:"start_date" json:"start_date" binding:"required,bookabledate" time_format:"2006-01-02"`
	EndDate      string `form:"end_date" json:"end_date" binding:"required,bookabledate,gtdate=StartDate" time_format:"2006-01-02"`
}

type UpdateReservationRequestBody struct {
	NumGuests    uint   `form:"num_guests" json:"num_guests" binding:"required"`
	Observations string `form:"observations" json:"observations,omitempty"`
}

// UpdateProfileRequestBody: Nationality arrives as "CommonName%flagURL",
// the two halves split on the % delimiter.
type UpdateProfileRequestBody struct {
	NationalID  string `form:"national_id" json:"national_id" binding:"required,nationalid"`
	Nationality string `form:"nationality" json:"nationality" binding:"required"`
}

type CabinQueryFilters struct {
	MaxCapacity string `form:"capacity"`
	Discounted  string `form:"discounted"`
}

type Country struct {
	Cca2 string `json:"cca2"`
	Flag string `json:"flag"`
	Name struct {
		Common     string            `json:"common"`
		NativeName map[string]string `json:"nativeName"`
		Official   string            `json:"official"`
	} `json:"name"`
}

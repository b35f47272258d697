package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"oasis/src/db"
	"oasis/src/models"
	"oasis/src/models/scopes"
	"oasis/src/types"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

// EnsureGuest resolves the guest record for a provider identity, creating it
// on first sign-in. Optional profile fields start empty. Looking up before
// inserting keeps the flow idempotent: the same email never yields a second
// row.
func EnsureGuest(email string, fullName string, uid string) (uint, error) {
	d := db.GetDb()
	var guest models.Guest
	err := d.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&models.Guest{}).
			Where(&models.Guest{Email: email}).
			First(&guest).
			Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		guest = models.Guest{
			Email:    email,
			FullName: fullName,
			UID:      uid,
		}
		if err := tx.Create(&guest).Error; err != nil {
			log.Printf("Error creating guest for %s: %s\n", email, err.Error())
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return guest.ID, nil
}

// OwnsBooking is the ownership check shared by update and delete: a single
// keyed existence query instead of loading the caller's whole booking set.
func OwnsBooking(guestId uint, bookingId uint) (bool, error) {
	d := db.GetDb()
	var count int64
	err := d.
		Model(&models.Booking{}).
		Scopes(scopes.WithID(bookingId), scopes.OwnedBy(guestId)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetOwnReservations(id uint) ([]models.Booking, error) {
	d := db.GetDb()
	var bookings []models.Booking
	err := d.
		Model(&models.Booking{}).
		Scopes(scopes.OwnedBy(id)).
		Preload("Cabin").
		Order("start_date DESC").
		Find(&bookings).
		Error
	return bookings, err
}

func GenerateJWT(email string, id uint, uid string) (string, error) {
	claims := types.Claims{
		Email:   email,
		GuestID: id,
		UID:     uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(jwtKey)
}

// Truncate caps s at max characters, counting runes rather than bytes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

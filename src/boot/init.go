package boot

import (
	"errors"
	"log"

	"oasis/src/db"
	"oasis/src/lib"
	"oasis/src/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Guest{},
		&models.Cabin{},
		&models.Booking{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	seedSettings(db)

	return db
}

// seedSettings makes sure the single policy row exists.
func seedSettings(db *gorm.DB) {
	var setting models.Setting
	err := db.Model(&models.Setting{}).First(&setting).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error reading settings: %s\n", err.Error())
		return
	}
	setting = models.Setting{
		MinBookingLength:    3,
		MaxBookingLength:    90,
		MaxGuestsPerBooking: 8,
		BreakfastPrice:      15,
	}
	if err := db.Create(&setting).Error; err != nil {
		log.Printf("Error seeding settings: %s\n", err.Error())
	}
}

// InitScheduler starts the daily refresh of the countries cache.
func InitScheduler(refresh func()) {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	_, err = sched.NewJob(
		gocron.CronJob("0 4 * * *", false),
		gocron.NewTask(refresh),
	)
	if err != nil {
		log.Printf("Error scheduling countries refresh: %s\n", err.Error())
		return
	}
	sched.Start()
}

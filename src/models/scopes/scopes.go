package scopes

import "gorm.io/gorm"

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func OwnedBy(guestId uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("guest_id = ?", guestId)
	}
}

func WithUnconfirmedStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "unconfirmed")
}

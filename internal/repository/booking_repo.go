package repository

import (
	"gorm.io/gorm"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// ListForOwner returns one user's bookings, most recent date first.
func (r *BookingRepository) ListForOwner(userID uint) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListAll() ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := r.db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) ListByType(t models.BookingType) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := r.db.Where("type = ?", t).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

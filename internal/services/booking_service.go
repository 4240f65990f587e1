package services

import (
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/validators"
)

type BookingStore interface {
	Create(booking *models.Booking) error
	ListForOwner(userID uint) ([]*models.Booking, error)
	ListAll() ([]*models.Booking, error)
	ListByType(t models.BookingType) ([]*models.Booking, error)
}

type BookingService struct {
	bookings BookingStore
}

func NewBookingService(bookings BookingStore) *BookingService {
	return &BookingService{bookings: bookings}
}

// Create books for the authenticated caller. The owner always comes
// from the identity — there is no way for a request body to choose a
// different one. The type is not checked against the item catalog;
// bookings and catalog items are independent records. Status starts
// (and currently stays) "pending": no endpoint transitions it.
func (s *BookingService) Create(identity models.Identity, bookingType, date string) (*models.Booking, error) {
	if err := validators.ValidateBookingType(bookingType); err != nil {
		return nil, err
	}
	if err := validators.ValidateDate(date); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID: identity.UserID,
		Type:   models.BookingType(bookingType),
		Date:   date,
		Status: models.StatusPending,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListForOwner(identity models.Identity) ([]*models.Booking, error) {
	return s.bookings.ListForOwner(identity.UserID)
}

func (s *BookingService) ListAll() ([]*models.Booking, error) {
	return s.bookings.ListAll()
}

func (s *BookingService) ListByType(t models.BookingType) ([]*models.Booking, error) {
	return s.bookings.ListByType(t)
}

package models

import "time"

type BookingType string

const (
	TypeResort     BookingType = "resort"
	TypeMovie      BookingType = "movie"
	TypeSalon      BookingType = "salon"
	TypeFitness    BookingType = "fitness"
	TypeParty      BookingType = "party"
	TypeCatering   BookingType = "catering"
	TypeStationery BookingType = "stationery"
)

var AllBookingTypes = []BookingType{
	TypeResort, TypeMovie, TypeSalon, TypeFitness, TypeParty,
	TypeCatering, TypeStationery,
}

func (t BookingType) Valid() bool {
	for _, known := range AllBookingTypes {
		if t == known {
			return true
		}
	}
	return false
}

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking belongs to exactly one user, fixed at creation from the
// authenticated identity. Type is a free-standing category string and
// is intentionally not a reference into the item catalog. Date is an
// ISO calendar date (YYYY-MM-DD), which also sorts correctly as text.
type Booking struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	UserID    uint          `json:"user_id" gorm:"not null;index"`
	Type      BookingType   `json:"type" gorm:"type:varchar(20);not null"`
	Date      string        `json:"date" gorm:"type:date;not null"`
	Status    BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time     `json:"created_at"`
}

package models

import "time"

type Category string

const (
	CategoryCatering   Category = "catering"
	CategoryStationery Category = "stationery"
)

func (c Category) Valid() bool {
	return c == CategoryCatering || c == CategoryStationery
}

// Item is a purchasable catalog entry. Price is kept as a canonical
// two-decimal string so values round-trip exactly through the API.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Category    Category  `json:"category" gorm:"type:varchar(20);not null"`
	Price       string    `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

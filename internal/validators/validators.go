package validators

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
)

var (
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidBookingType = errors.New("invalid booking type")
	ErrInvalidCategory    = errors.New("invalid category")
)

// Price: non-negative decimal, at most two fractional digits.
var priceRegex = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

const dateLayout = "2006-01-02"

// NormalizePrice validates a price string and returns its canonical
// two-decimal form ("1.5" -> "1.50", "7" -> "7.00"). Negative values,
// extra precision, and anything non-numeric are rejected.
func NormalizePrice(price string) (string, error) {
	price = strings.TrimSpace(price)
	if !priceRegex.MatchString(price) {
		return "", ErrInvalidPrice
	}

	whole, frac, found := strings.Cut(price, ".")
	if !found {
		frac = ""
	}
	for len(frac) < 2 {
		frac += "0"
	}
	return whole + "." + frac, nil
}

// ValidateDate checks an ISO calendar date (YYYY-MM-DD).
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func ValidateBookingType(t string) error {
	if !models.BookingType(t).Valid() {
		return ErrInvalidBookingType
	}
	return nil
}

func ValidateCategory(c string) error {
	if !models.Category(c).Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// Register hooks the domain validators into gin's binding engine so
// request structs can declare them as tags:
//
//	Type string `json:"type" binding:"required,bookingtype"`
//
// Call once at startup (and in test setup) before handling requests.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("bookingtype", func(fl validator.FieldLevel) bool {
		return ValidateBookingType(fl.Field().String()) == nil
	})
	v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
		return ValidateDate(fl.Field().String()) == nil
	})
	v.RegisterValidation("itemcategory", func(fl validator.FieldLevel) bool {
		return ValidateCategory(fl.Field().String()) == nil
	})
	v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		_, err := NormalizePrice(fl.Field().String())
		return err == nil
	})
}

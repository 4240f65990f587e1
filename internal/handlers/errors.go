package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldErrors turns a binding failure into a field -> messages map so
// clients can attach errors to the right form fields.
func fieldErrors(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], validationMessage(fe))
		}
		return out
	}

	out["non_field_errors"] = []string{"Invalid request body."}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "bookingtype":
		return "Invalid booking type."
	case "bookingdate":
		return "Date must be in YYYY-MM-DD format."
	case "itemcategory":
		return "Invalid category."
	case "price":
		return "Price must be a non-negative amount with at most two decimals."
	default:
		return "Invalid value."
	}
}

func badRequest(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
}

func internalError(c *gin.Context) {
	// Never leak internals to the client.
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "internal server error",
	})
}

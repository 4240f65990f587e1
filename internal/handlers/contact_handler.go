package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/metrics"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
)

type ContactStore interface {
	Create(msg *models.ContactMessage) error
}

type ContactHandler struct {
	contacts ContactStore
}

func NewContactHandler(contacts ContactStore) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Create receives a public contact-form message.
func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fieldErrors(err))
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.contacts.Create(msg); err != nil {
		internalError(c)
		return
	}

	metrics.ContactMessagesTotal.Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message received successfully!",
	})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/validators"
)

type ItemHandler struct {
	catalog *services.CatalogService
}

func NewItemHandler(catalog *services.CatalogService) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required,itemcategory"`
	Price       string `json:"price" binding:"required,price"`
	Description string `json:"description"`
}

// UpdateItemRequest carries a partial patch; absent fields stay as
// they are.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category" binding:"omitempty,itemcategory"`
	Price       *string `json:"price" binding:"omitempty,price"`
	Description *string `json:"description"`
}

// List serves the admin catalog view, optionally narrowed with
// ?category=.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.catalog.List(c.Query("category"))
	if err != nil {
		if errors.Is(err, validators.ErrInvalidCategory) {
			badRequest(c, map[string][]string{"category": {"Invalid category."}})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListByCategory returns a handler serving one fixed category; the
// voyager catering/stationery pages use it.
func (h *ItemHandler) ListByCategory(category models.Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.catalog.List(string(category))
		if err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			itemNotFound(c)
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fieldErrors(err))
		return
	}

	item, err := h.catalog.Create(req.Name, req.Category, req.Price, req.Description)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fieldErrors(err))
		return
	}

	item, err := h.catalog.Update(id, services.ItemUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			itemNotFound(c)
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.catalog.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			itemNotFound(c)
			return
		}
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func itemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		itemNotFound(c)
		return 0, false
	}
	return uint(id), true
}

func itemNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "item not found"})
}

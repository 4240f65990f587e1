package services

import (
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/validators"
)

type ItemStore interface {
	Create(item *models.Item) error
	GetByID(id uint) (*models.Item, error)
	List(category models.Category) ([]*models.Item, error)
	Update(item *models.Item) error
	Delete(id uint) error
}

type CatalogService struct {
	items ItemStore
}

func NewCatalogService(items ItemStore) *CatalogService {
	return &CatalogService{items: items}
}

// ItemUpdate is a partial patch; nil fields keep their stored value.
type ItemUpdate struct {
	Name        *string
	Category    *string
	Price       *string
	Description *string
}

func (s *CatalogService) Create(name, category, price, description string) (*models.Item, error) {
	if err := validators.ValidateCategory(category); err != nil {
		return nil, err
	}
	normalized, err := validators.NormalizePrice(price)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:        name,
		Category:    models.Category(category),
		Price:       normalized,
		Description: description,
	}
	if err := s.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) Get(id uint) (*models.Item, error) {
	return s.items.GetByID(id)
}

// List returns catalog items ordered by name, optionally narrowed to
// one category.
func (s *CatalogService) List(category string) ([]*models.Item, error) {
	if category != "" {
		if err := validators.ValidateCategory(category); err != nil {
			return nil, err
		}
	}
	return s.items.List(models.Category(category))
}

func (s *CatalogService) Update(id uint, patch ItemUpdate) (*models.Item, error) {
	item, err := s.items.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		if err := validators.ValidateCategory(*patch.Category); err != nil {
			return nil, err
		}
		item.Category = models.Category(*patch.Category)
	}
	if patch.Price != nil {
		normalized, err := validators.NormalizePrice(*patch.Price)
		if err != nil {
			return nil, err
		}
		item.Price = normalized
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}

	if err := s.items.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) Delete(id uint) error {
	return s.items.Delete(id)
}

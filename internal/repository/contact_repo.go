package repository

import (
	"gorm.io/gorm"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(msg *models.ContactMessage) error {
	return r.db.Create(msg).Error
}

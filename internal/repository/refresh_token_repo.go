package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// Consume marks the token used. The guarded single-row UPDATE is the
// rotation lock: whichever request flips used first wins, every later
// attempt (a replayed refresh token) sees zero rows and gets
// ErrNotFound. Expired rows are never consumable.
func (r *RefreshTokenRepository) Consume(jti string) error {
	res := r.db.Model(&models.RefreshToken{}).
		Where("jti = ? AND used = ? AND expires_at > ?", jti, false, time.Now()).
		Update("used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RefreshTokenRepository) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}

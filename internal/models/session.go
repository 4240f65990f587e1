package models

import "time"

// Session is the server-side state behind a cookie-based login.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// RefreshToken tracks one issued refresh token by its JTI claim.
// Rotation consumes the row: a consumed token must never be accepted
// again, so at most one live refresh token exists per issued pair.
type RefreshToken struct {
	JTI       string    `json:"jti" gorm:"primaryKey;column:jti"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

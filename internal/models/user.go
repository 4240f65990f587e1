package models

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleVoyager    Role = "voyager"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleHeadCook   Role = "head_cook"
	RoleSupervisor Role = "supervisor"
)

// AllRoles lists every role the system recognises.
var AllRoles = []Role{RoleVoyager, RoleAdmin, RoleManager, RoleHeadCook, RoleSupervisor}

func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole accepts any casing ("Voyager", "HEAD_COOK") and returns the
// canonical lowercase role.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller as seen by handlers: the claims
// embedded in an access token, or the user behind a session cookie.
type Identity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

func (u *User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

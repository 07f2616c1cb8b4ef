package models

import (
	"strings"
	"time"
)

// UnusablePassword marks an account that cannot log in with a password.
const UnusablePassword = "!"

type User struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Email       string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"`
	Name        string    `json:"name" gorm:"size:255"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsStaff     bool      `json:"is_staff" gorm:"default:false"`
	IsSuperuser bool      `json:"is_superuser" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u User) String() string {
	return u.Email
}

// NormalizeEmail lowercases the domain part of an email address and leaves
// the local part untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

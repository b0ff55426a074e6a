package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username        string `gorm:"uniqueIndex;not null" json:"username"`
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	Password        string `gorm:"not null" json:"-"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfilePicture  string `json:"profile_picture"`
	Bio             string `json:"bio"`
	CulinaryLevel   int    `gorm:"default:1" json:"culinary_level"` // 1-5
	IsEmailVerified bool   `json:"is_email_verified"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DietaryRestriction struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

type Allergy struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

// UserProfile holds the dietary preferences attached to a user. It is
// created lazily on first access to /profiles/me.
type UserProfile struct {
	gorm.Model
	UserID              uint                 `gorm:"uniqueIndex;not null" json:"user_id"`
	User                User                 `json:"user"`
	DietaryRestrictions []DietaryRestriction `gorm:"many2many:profile_dietary_restrictions" json:"dietary_restrictions"`
	Allergies           []Allergy            `gorm:"many2many:profile_allergies" json:"allergies"`
	FoodPreferences     datatypes.JSON       `json:"food_preferences"`
}

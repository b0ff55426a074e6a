package services

import (
	"errors"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func loadProfile(profileID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := config.DB.
		Preload("User").
		Preload("DietaryRestrictions").
		Preload("Allergies").
		First(&profile, profileID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetOrCreateProfile returns the user's profile, creating an empty one on
// first access.
func GetOrCreateProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID}
		if err := config.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return loadProfile(profile.ID)
}

type ProfileUpdateInput struct {
	DietaryRestrictionIDs *[]uint         `json:"dietary_restriction_ids"`
	AllergyIDs            *[]uint         `json:"allergy_ids"`
	FoodPreferences       *datatypes.JSON `json:"food_preferences"`
}

func UpdateProfile(userID uint, input ProfileUpdateInput) (*models.UserProfile, error) {
	profile, err := GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.DietaryRestrictionIDs != nil {
		var restrictions []models.DietaryRestriction
		if len(*input.DietaryRestrictionIDs) > 0 {
			config.DB.Find(&restrictions, *input.DietaryRestrictionIDs)
		}
		if err := config.DB.Model(profile).Association("DietaryRestrictions").Replace(restrictions); err != nil {
			return nil, err
		}
	}
	if input.AllergyIDs != nil {
		var allergies []models.Allergy
		if len(*input.AllergyIDs) > 0 {
			config.DB.Find(&allergies, *input.AllergyIDs)
		}
		if err := config.DB.Model(profile).Association("Allergies").Replace(allergies); err != nil {
			return nil, err
		}
	}
	if input.FoodPreferences != nil {
		profile.FoodPreferences = *input.FoodPreferences
		if err := config.DB.Save(profile).Error; err != nil {
			return nil, err
		}
	}

	return loadProfile(profile.ID)
}

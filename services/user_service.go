package services

import (
	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"
)

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

type UserUpdateInput struct {
	Username       *string `json:"username"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	ProfilePicture *string `json:"profile_picture"`
	Bio            *string `json:"bio"`
	CulinaryLevel  *int    `json:"culinary_level"`
}

// UpdateUser applies a partial update to the caller's own account.
func UpdateUser(userID uint, input UserUpdateInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}

	if input.Username != nil {
		var count int64
		config.DB.Model(&models.User{}).
			Where("username = ? AND id <> ?", *input.Username, userID).
			Count(&count)
		if count > 0 {
			return nil, ErrUsernameTaken
		}
		user.Username = *input.Username
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.CulinaryLevel != nil && *input.CulinaryLevel >= 1 && *input.CulinaryLevel <= 5 {
		user.CulinaryLevel = *input.CulinaryLevel
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

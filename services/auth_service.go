package services

import (
	"errors"
	"time"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"
	"github.com/Yvancedric/partage-recettes-optimisation/utils"

	"gorm.io/gorm"
)

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func RegisterUser(input RegisterInput) (*models.User, error) {
	if input.Password != input.Password2 {
		return nil, ErrPasswordMismatch
	}
	if len(input.Password) < 8 {
		return nil, ErrWeakPassword
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		return nil, ErrEmailTaken
	}
	config.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashedPassword,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, utils.TokenPair, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, utils.TokenPair{}, ErrBadCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, utils.TokenPair{}, ErrBadCredentials
	}

	tokens, err := utils.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, utils.TokenPair{}, err
	}
	return &user, tokens, nil
}

func RefreshTokens(refreshToken string) (utils.TokenPair, error) {
	userID, _, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return utils.TokenPair{}, err
	}

	// Token may outlive the account; re-check before minting.
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return utils.TokenPair{}, errors.New("user no longer exists")
	}
	return utils.GenerateTokenPair(user.ID, user.Email)
}

// RequestPasswordReset creates a 24h reset token and mails it. It succeeds
// silently for unknown emails to avoid account enumeration.
func RequestPasswordReset(email string) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}

	token := utils.GenerateRandomToken(32)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(24 * time.Hour)
	config.DB.Save(&user)

	utils.SendResetEmail(user.Email, user.Username, token)
}

func ValidateResetToken(token string) error {
	var user models.User
	if err := config.DB.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return errors.New("invalid or expired token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}
	return nil
}

func ResetPassword(token, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	var user models.User
	if err := config.DB.Where("reset_token = ? AND reset_token <> ''", token).First(&user).Error; err != nil {
		return errors.New("invalid or expired token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}

// SocialTokens completes a social sign-in for an already-authenticated
// principal: it guarantees the profile row exists and mints a token pair.
func SocialTokens(userID uint) (utils.TokenPair, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return utils.TokenPair{}, err
	}

	var profile models.UserProfile
	err := config.DB.Where("user_id = ?", user.ID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config.DB.Create(&models.UserProfile{UserID: user.ID})
	}

	return utils.GenerateTokenPair(user.ID, user.Email)
}

package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/Yvancedric/partage-recettes-optimisation/middlewares"
	"github.com/Yvancedric/partage-recettes-optimisation/services"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.RegisterUser(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch),
			errors.Is(err, services.ErrWeakPassword),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  tokens.Access,
		"refresh": tokens.Refresh,
		"user":    user,
	})
}

func Refresh(c *gin.Context) {
	var input struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := services.RefreshTokens(input.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func RequestPasswordReset(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Always 200, whether or not the account exists.
	services.RequestPasswordReset(input.Email)
	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link has been sent"})
}

func ValidateResetToken(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := services.ValidateResetToken(input.Token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "valid"})
}

func ConfirmPasswordReset(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := services.ResetPassword(input.Token, input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}

// SocialCallback finishes a social sign-in: the provider handshake happens
// upstream, so by the time we are called the principal is authenticated. We
// mint a token pair and send the browser back to the front-end with both
// tokens in the query string.
func SocialCallback(c *gin.Context) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}

	userID := middlewares.CallerID(c)
	if userID == 0 {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/login?error=social_auth_failed", frontend))
		return
	}

	tokens, err := services.SocialTokens(userID)
	if err != nil {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/login?error=social_auth_failed", frontend))
		return
	}

	c.Redirect(http.StatusFound,
		fmt.Sprintf("%s/auth/callback?access=%s&refresh=%s", frontend, tokens.Access, tokens.Refresh))
}

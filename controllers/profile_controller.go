package controllers

import (
	"net/http"

	"github.com/Yvancedric/partage-recettes-optimisation/middlewares"
	"github.com/Yvancedric/partage-recettes-optimisation/services"

	"github.com/gin-gonic/gin"
)

func GetMyProfile(c *gin.Context) {
	profile, err := services.GetOrCreateProfile(middlewares.CallerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateMyProfile(c *gin.Context) {
	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpdateProfile(middlewares.CallerID(c), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

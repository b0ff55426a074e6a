package controllers

import (
	"net/http"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"

	"github.com/gin-gonic/gin"
)

// Read-only reference catalogs, maintained out of band.

func ListRecipeCategories(c *gin.Context) {
	var categories []models.RecipeCategory
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func ListIngredientCategories(c *gin.Context) {
	var categories []models.IngredientCategory
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func ListDietaryRestrictions(c *gin.Context) {
	var restrictions []models.DietaryRestriction
	if err := config.DB.Order("name").Find(&restrictions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, restrictions)
}

func ListAllergies(c *gin.Context) {
	var allergies []models.Allergy
	if err := config.DB.Order("name").Find(&allergies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, allergies)
}

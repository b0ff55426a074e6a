package controllers

import (
	"errors"
	"net/http"

	"github.com/Yvancedric/partage-recettes-optimisation/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinels onto the HTTP taxonomy.
// Ownership failures on recipes come back as validation-style rejections;
// hidden resources are plain 404s.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusBadRequest, gin.H{"error": "you are not allowed to modify this recipe"})
	case errors.Is(err, services.ErrInvalidMealType),
		errors.Is(err, services.ErrDuplicateSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

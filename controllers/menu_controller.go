package controllers

import (
	"net/http"
	"time"

	"github.com/Yvancedric/partage-recettes-optimisation/middlewares"
	"github.com/Yvancedric/partage-recettes-optimisation/services"

	"github.com/gin-gonic/gin"
)

var menuSvc = services.NewMenuService()

const dateLayout = "2006-01-02"

func ListMenus(c *gin.Context) {
	menus, err := menuSvc.List(middlewares.CallerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

func CreateMenu(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		StartDate string `json:"start_date" binding:"required"`
		EndDate   string `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
		return
	}

	menu, err := menuSvc.Create(middlewares.CallerID(c), input.Name, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, menu)
}

func GetMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	menu, err := menuSvc.Get(middlewares.CallerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

func DeleteMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := menuSvc.Delete(middlewares.CallerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func AddRecipeToMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		RecipeID uint   `json:"recipe_id" binding:"required"`
		Date     string `json:"date" binding:"required"`
		MealType string `json:"meal_type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	assignment, err := menuSvc.AddRecipe(middlewares.CallerID(c), id, input.RecipeID, date, input.MealType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

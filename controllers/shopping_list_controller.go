package controllers

import (
	"net/http"

	"github.com/Yvancedric/partage-recettes-optimisation/middlewares"
	"github.com/Yvancedric/partage-recettes-optimisation/services"

	"github.com/gin-gonic/gin"
)

var listSvc = services.NewShoppingListService()

func ListShoppingLists(c *gin.Context) {
	lists, err := listSvc.List(middlewares.CallerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func CreateShoppingList(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := listSvc.Create(middlewares.CallerID(c), input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func GetShoppingList(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	list, err := listSvc.Get(middlewares.CallerID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func UpdateShoppingList(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := listSvc.Rename(middlewares.CallerID(c), id, input.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func DeleteShoppingList(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := listSvc.Delete(middlewares.CallerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func AddShoppingListItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input services.ShoppingListItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := listSvc.AddItem(middlewares.CallerID(c), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateShoppingListItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input services.ShoppingListItemUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := listSvc.UpdateItem(middlewares.CallerID(c), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteShoppingListItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := listSvc.DeleteItem(middlewares.CallerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ShoppingListFromRecipe appends every ingredient of a recipe to the list as
// snapshot items.
func ShoppingListFromRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		RecipeID uint `json:"recipe_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := listSvc.FromRecipe(middlewares.CallerID(c), id, input.RecipeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ShoppingListFromMenu aggregates every recipe planned in a menu into the
// list, merging duplicate (name, unit) ingredients.
func ShoppingListFromMenu(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct {
		MenuID uint `json:"menu_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := listSvc.FromMenu(middlewares.CallerID(c), id, input.MenuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Yvancedric/partage-recettes-optimisation/middlewares"
	"github.com/Yvancedric/partage-recettes-optimisation/models"
	"github.com/Yvancedric/partage-recettes-optimisation/services"
	"github.com/Yvancedric/partage-recettes-optimisation/utils"

	"github.com/gin-gonic/gin"
)

var recipeSvc = services.NewRecipeService()

type recipeResponse struct {
	models.Recipe
	TotalTime   int  `json:"total_time"`
	IsFavorited bool `json:"is_favorited"`
}

func presentRecipe(r *models.Recipe, callerID uint) recipeResponse {
	return recipeResponse{
		Recipe:      *r,
		TotalTime:   r.TotalTime(),
		IsFavorited: recipeSvc.IsFavorited(callerID, r.ID),
	}
}

func presentRecipes(recipes []models.Recipe, callerID uint) []recipeResponse {
	out := make([]recipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, presentRecipe(&recipes[i], callerID))
	}
	return out
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// uploadFormImages stores the "images" file parts and returns their URLs.
func uploadFormImages(c *gin.Context) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	var urls []string
	for _, fh := range form.File["images"] {
		url, err := utils.UploadMultipartImage(fh, "recipes")
		if err != nil {
			log.Printf("skipping uploaded image %s: %v", fh.Filename, err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func uploadMainImage(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("main_image")
	if err != nil {
		return "", false
	}
	url, err := utils.UploadMultipartImage(fh, "recipes")
	if err != nil {
		log.Printf("skipping main image %s: %v", fh.Filename, err)
		return "", false
	}
	return url, true
}

func formInt(c *gin.Context, field string) int {
	v, _ := strconv.Atoi(c.PostForm(field))
	return v
}

// bindRecipeCreate accepts either a JSON body or a multipart form whose
// structured fields arrive as string-encoded JSON.
func bindRecipeCreate(c *gin.Context) (services.RecipeInput, bool) {
	if !isMultipart(c) {
		var input services.RecipeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return input, false
		}
		return input, true
	}

	input := services.RecipeInput{
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		PrepTime:      formInt(c, "prep_time"),
		CookTime:      formInt(c, "cook_time"),
		Servings:      formInt(c, "servings"),
		Difficulty:    formInt(c, "difficulty"),
		EstimatedCost: formInt(c, "estimated_cost"),
		Instructions:  c.PostForm("instructions"),
		Tags:          models.ParseStringList(c.PostForm("tags")),
		Ingredients:   models.ParseIngredientList(c.PostForm("ingredients")),
	}
	if raw := c.PostForm("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cid := uint(id)
			input.CategoryID = &cid
		}
	}
	if raw := c.PostForm("is_published"); raw != "" {
		published := raw == "true" || raw == "1"
		input.IsPublished = &published
	}
	if url, ok := uploadMainImage(c); ok {
		input.MainImage = url
	}
	input.Images = uploadFormImages(c)
	return input, true
}

func bindRecipeUpdate(c *gin.Context) (services.RecipeUpdateInput, bool) {
	if !isMultipart(c) {
		var input services.RecipeUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return input, false
		}
		return input, true
	}

	var input services.RecipeUpdateInput
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}

	formValue := func(field string) (string, bool) {
		vals, ok := form.Value[field]
		if !ok || len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	}
	if v, ok := formValue("title"); ok {
		input.Title = &v
	}
	if v, ok := formValue("description"); ok {
		input.Description = &v
	}
	if v, ok := formValue("instructions"); ok {
		input.Instructions = &v
	}
	if v, ok := formValue("category_id"); ok {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			cid := uint(id)
			input.CategoryID = &cid
		}
	}
	intField := func(field string, dest **int) {
		if v, ok := formValue(field); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dest = &n
			}
		}
	}
	intField("prep_time", &input.PrepTime)
	intField("cook_time", &input.CookTime)
	intField("servings", &input.Servings)
	intField("difficulty", &input.Difficulty)
	intField("estimated_cost", &input.EstimatedCost)
	if v, ok := formValue("is_published"); ok {
		published := v == "true" || v == "1"
		input.IsPublished = &published
	}
	if v, ok := formValue("tags"); ok {
		tags := models.ParseStringList(v)
		input.Tags = &tags
	}
	if v, ok := formValue("ingredients"); ok {
		ingredients := models.ParseIngredientList(v)
		input.Ingredients = &ingredients
	}
	if url, ok := uploadMainImage(c); ok {
		input.MainImage = &url
	}
	if _, ok := form.File["images"]; ok {
		urls := uploadFormImages(c)
		input.Images = &urls
	}
	return input, true
}

func ListRecipes(c *gin.Context) {
	filters := services.RecipeFilters{
		Category:    c.Query("category"),
		Difficulty:  c.Query("difficulty"),
		MaxTime:     c.Query("max_time"),
		MinServings: c.Query("min_servings"),
		Tags:        c.QueryArray("tags"),
		Ingredient:  c.Query("ingredient"),
	}

	callerID := middlewares.CallerID(c)
	recipes, err := recipeSvc.List(callerID, filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentRecipes(recipes, callerID))
}

func GetRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	callerID := middlewares.CallerID(c)
	recipe, err := recipeSvc.Retrieve(callerID, id, c.ClientIP())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentRecipe(recipe, callerID))
}

func CreateRecipe(c *gin.Context) {
	input, ok := bindRecipeCreate(c)
	if !ok {
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	callerID := middlewares.CallerID(c)
	recipe, err := recipeSvc.Create(callerID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, presentRecipe(recipe, callerID))
}

func UpdateRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	input, ok := bindRecipeUpdate(c)
	if !ok {
		return
	}

	callerID := middlewares.CallerID(c)
	recipe, err := recipeSvc.Update(callerID, id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentRecipe(recipe, callerID))
}

func DeleteRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := recipeSvc.Delete(middlewares.CallerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func FavoriteRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	err := recipeSvc.Favorite(middlewares.CallerID(c), id)
	if errors.Is(err, services.ErrAlreadyFavorited) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "already_favorited"})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added"})
}

func UnfavoriteRecipe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := recipeSvc.Unfavorite(middlewares.CallerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func MyRecipes(c *gin.Context) {
	callerID := middlewares.CallerID(c)
	recipes, err := recipeSvc.MyRecipes(callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentRecipes(recipes, callerID))
}

func FavoriteRecipes(c *gin.Context) {
	callerID := middlewares.CallerID(c)
	recipes, err := recipeSvc.FavoriteRecipes(callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentRecipes(recipes, callerID))
}

func RecipeHistory(c *gin.Context) {
	callerID := middlewares.CallerID(c)
	recipes, err := recipeSvc.History(callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentRecipes(recipes, callerID))
}

package services

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"
	"github.com/Yvancedric/partage-recettes-optimisation/utils"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxRecipeImages = 5

type RecipeService struct{}

func NewRecipeService() *RecipeService {
	return &RecipeService{}
}

type RecipeInput struct {
	Title         string                     `json:"title"`
	Description   string                     `json:"description"`
	CategoryID    *uint                      `json:"category_id"`
	PrepTime      int                        `json:"prep_time"`
	CookTime      int                        `json:"cook_time"`
	Servings      int                        `json:"servings"`
	Difficulty    int                        `json:"difficulty"`
	EstimatedCost int                        `json:"estimated_cost"`
	Instructions  string                     `json:"instructions"`
	Tags          models.StringList          `json:"tags"`
	MainImage     string                     `json:"main_image"`
	IsPublished   *bool                      `json:"is_published"`
	Ingredients   models.IngredientInputList `json:"ingredients"`
	Images        []string                   `json:"images"`
}

// RecipeUpdateInput distinguishes absent fields (leave untouched) from
// explicitly supplied ones, including explicit empty lists.
type RecipeUpdateInput struct {
	Title         *string                     `json:"title"`
	Description   *string                     `json:"description"`
	CategoryID    *uint                       `json:"category_id"`
	PrepTime      *int                        `json:"prep_time"`
	CookTime      *int                        `json:"cook_time"`
	Servings      *int                        `json:"servings"`
	Difficulty    *int                        `json:"difficulty"`
	EstimatedCost *int                        `json:"estimated_cost"`
	Instructions  *string                     `json:"instructions"`
	Tags          *models.StringList          `json:"tags"`
	MainImage     *string                     `json:"main_image"`
	IsPublished   *bool                       `json:"is_published"`
	Ingredients   *models.IngredientInputList `json:"ingredients"`
	Images        *[]string                   `json:"images"`
}

type RecipeFilters struct {
	Category    string
	Difficulty  string
	MaxTime     string
	MinServings string
	Tags        []string
	Ingredient  string
}

func tagsJSON(tags models.StringList) datatypes.JSON {
	if tags == nil {
		tags = models.StringList{}
	}
	b, _ := json.Marshal(tags)
	return datatypes.JSON(b)
}

// admitIngredients applies the per-ingredient admission rule: entries with a
// blank name or a blank/unparseable quantity are dropped, never fatal.
func admitIngredients(recipeID uint, inputs models.IngredientInputList) []models.Ingredient {
	var out []models.Ingredient
	for idx, in := range inputs {
		name := strings.TrimSpace(in.Name)
		rawQty := strings.TrimSpace(in.Quantity.String())
		if name == "" || rawQty == "" {
			log.Printf("dropping ingredient entry %d: missing name or quantity", idx)
			continue
		}
		quantity, err := decimal.NewFromString(rawQty)
		if err != nil {
			log.Printf("dropping ingredient %q: unparseable quantity %q", name, rawQty)
			continue
		}

		price := decimal.Zero
		if raw := strings.TrimSpace(in.EstimatedPrice.String()); raw != "" {
			if parsed, err := decimal.NewFromString(raw); err == nil {
				price = parsed
			}
		}

		order := idx
		if in.Order.Set {
			order = in.Order.Value
		}

		out = append(out, models.Ingredient{
			RecipeID:       recipeID,
			Name:           name,
			Quantity:       quantity,
			Unit:           strings.TrimSpace(in.Unit),
			CategoryID:     in.CategoryID,
			EstimatedPrice: price,
			Order:          order,
		})
	}
	return out
}

// storeImage resolves an image payload to a stored URL: data URIs are pushed
// to S3, anything else is assumed to already be a URL.
func storeImage(payload string) (string, error) {
	if strings.HasPrefix(payload, "data:") {
		return utils.UploadBase64Image(payload, "recipes")
	}
	return payload, nil
}

func replaceImages(tx *gorm.DB, recipeID uint, images []string) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeImage{}).Error; err != nil {
		return err
	}
	if len(images) > maxRecipeImages {
		images = images[:maxRecipeImages]
	}
	for idx, payload := range images {
		url, err := storeImage(payload)
		if err != nil {
			log.Printf("skipping image %d: %v", idx, err)
			continue
		}
		img := models.RecipeImage{RecipeID: recipeID, Image: url, Order: idx}
		if err := tx.Create(&img).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *RecipeService) Create(authorID uint, input RecipeInput) (*models.Recipe, error) {
	published := true
	if input.IsPublished != nil {
		published = *input.IsPublished
	}

	recipe := models.Recipe{
		AuthorID:      authorID,
		Title:         input.Title,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		PrepTime:      input.PrepTime,
		CookTime:      input.CookTime,
		Servings:      input.Servings,
		Difficulty:    input.Difficulty,
		EstimatedCost: input.EstimatedCost,
		Instructions:  input.Instructions,
		Tags:          tagsJSON(input.Tags),
		MainImage:     input.MainImage,
		IsPublished:   published,
	}
	if recipe.Difficulty == 0 {
		recipe.Difficulty = 2
	}
	if recipe.EstimatedCost == 0 {
		recipe.EstimatedCost = 2
	}
	if published {
		now := time.Now()
		recipe.PublishedAt = &now
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		for _, ing := range admitIngredients(recipe.ID, input.Ingredients) {
			ing := ing
			if err := tx.Create(&ing).Error; err != nil {
				return err
			}
		}
		if len(input.Images) > 0 {
			return replaceImages(tx, recipe.ID, input.Images)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.load(recipe.ID)
}

func (s *RecipeService) Update(callerID, recipeID uint, input RecipeUpdateInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, recipeID).Error; err != nil {
		return nil, ErrNotFound
	}
	// A foreign draft must look missing, not forbidden; only recipes the
	// caller can see get the ownership verdict.
	if !visible(&recipe, callerID) {
		return nil, ErrNotFound
	}
	if recipe.AuthorID != callerID {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.CategoryID != nil {
		recipe.CategoryID = input.CategoryID
	}
	if input.PrepTime != nil {
		recipe.PrepTime = *input.PrepTime
	}
	if input.CookTime != nil {
		recipe.CookTime = *input.CookTime
	}
	if input.Servings != nil {
		recipe.Servings = *input.Servings
	}
	if input.Difficulty != nil {
		recipe.Difficulty = *input.Difficulty
	}
	if input.EstimatedCost != nil {
		recipe.EstimatedCost = *input.EstimatedCost
	}
	if input.Instructions != nil {
		recipe.Instructions = *input.Instructions
	}
	if input.Tags != nil {
		recipe.Tags = tagsJSON(*input.Tags)
	}
	if input.MainImage != nil {
		recipe.MainImage = *input.MainImage
	}
	if input.IsPublished != nil {
		recipe.IsPublished = *input.IsPublished
		if recipe.IsPublished && recipe.PublishedAt == nil {
			now := time.Now()
			recipe.PublishedAt = &now
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		if input.Ingredients != nil {
			// Supplying the field replaces the whole set, an empty list clears it.
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
			for _, ing := range admitIngredients(recipe.ID, *input.Ingredients) {
				ing := ing
				if err := tx.Create(&ing).Error; err != nil {
					return err
				}
			}
		}
		if input.Images != nil {
			return replaceImages(tx, recipe.ID, *input.Images)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.load(recipe.ID)
}

func (s *RecipeService) Delete(callerID, recipeID uint) error {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, recipeID).Error; err != nil {
		return ErrNotFound
	}
	if !visible(&recipe, callerID) {
		return ErrNotFound
	}
	if recipe.AuthorID != callerID {
		return ErrNotOwner
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.FavoriteRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.MenuRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

func (s *RecipeService) load(recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Author").
		Preload("Category").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		Preload("Ingredients.Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		First(&recipe, recipeID).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &recipe, nil
}

// visible reports whether the caller may see the recipe. Hidden recipes are
// reported as missing, never as forbidden.
func visible(recipe *models.Recipe, callerID uint) bool {
	return recipe.IsPublished || recipe.AuthorID == callerID
}

// Get fetches a recipe without logging a view.
func (s *RecipeService) Get(callerID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.load(recipeID)
	if err != nil {
		return nil, err
	}
	if !visible(recipe, callerID) {
		return nil, ErrNotFound
	}
	return recipe, nil
}

// Retrieve fetches a recipe, appends a view-log row and bumps the views
// counter atomically.
func (s *RecipeService) Retrieve(callerID, recipeID uint, ip string) (*models.Recipe, error) {
	recipe, err := s.Get(callerID, recipeID)
	if err != nil {
		return nil, err
	}

	view := models.RecipeView{RecipeID: recipe.ID, IPAddress: ip}
	if callerID != 0 {
		view.UserID = &callerID
	}
	if err := config.DB.Create(&view).Error; err != nil {
		return nil, err
	}
	config.DB.Model(&models.Recipe{}).Where("id = ?", recipe.ID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	recipe.ViewsCount++

	return recipe, nil
}

func (s *RecipeService) List(callerID uint, f RecipeFilters) ([]models.Recipe, error) {
	q := config.DB.Model(&models.Recipe{}).
		Preload("Author").
		Preload("Category").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		Preload("Ingredients.Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) })

	if callerID == 0 {
		q = q.Where("is_published = ?", true)
	} else {
		q = q.Where("is_published = ? OR author_id = ?", true, callerID)
	}

	if f.Category != "" {
		q = q.Where("category_id = ?", f.Category)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	if f.MaxTime != "" {
		if maxTime, err := strconv.Atoi(f.MaxTime); err == nil {
			q = q.Where("prep_time <= ? AND cook_time <= ?", maxTime, maxTime)
		}
	}
	if f.MinServings != "" {
		if minServings, err := strconv.Atoi(f.MinServings); err == nil {
			q = q.Where("servings >= ?", minServings)
		}
	}
	for _, tag := range f.Tags {
		q = q.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(tag)+"%")
	}
	if f.Ingredient != "" {
		q = q.Where("id IN (?)", config.DB.Model(&models.Ingredient{}).
			Select("recipe_id").
			Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Ingredient)+"%"))
	}

	var recipes []models.Recipe
	if err := q.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Favorite bookmarks the recipe. A second attempt by the same user reports
// ErrAlreadyFavorited without touching the counter.
func (s *RecipeService) Favorite(userID, recipeID uint) error {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.FavoriteRecipe
		err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).First(&existing).Error
		if err == nil {
			return ErrAlreadyFavorited
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		fav := models.FavoriteRecipe{UserID: userID, RecipeID: recipe.ID}
		if err := tx.Create(&fav).Error; err != nil {
			return err
		}
		return tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
}

func (s *RecipeService) Unfavorite(userID, recipeID uint) error {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipe.ID).
			Delete(&models.FavoriteRecipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).
			UpdateColumn("favorites_count",
				gorm.Expr("CASE WHEN favorites_count > 0 THEN favorites_count - 1 ELSE 0 END")).Error
	})
}

func (s *RecipeService) IsFavorited(userID, recipeID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	config.DB.Model(&models.FavoriteRecipe{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count)
	return count > 0
}

func (s *RecipeService) MyRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := config.DB.
		Preload("Author").
		Preload("Category").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) FavoriteRecipes(userID uint) ([]models.Recipe, error) {
	var favorites []models.FavoriteRecipe
	err := config.DB.
		Preload("Recipe.Author").
		Preload("Recipe.Category").
		Preload("Recipe.Ingredients").
		Preload("Recipe.Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	recipes := make([]models.Recipe, 0, len(favorites))
	for _, f := range favorites {
		recipes = append(recipes, f.Recipe)
	}
	return recipes, nil
}

// History returns the recipes behind the caller's latest 50 view-log rows.
func (s *RecipeService) History(userID uint) ([]models.Recipe, error) {
	var views []models.RecipeView
	err := config.DB.
		Preload("Recipe.Author").
		Preload("Recipe.Category").
		Preload("Recipe.Ingredients").
		Preload("Recipe.Images").
		Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(50).
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	recipes := make([]models.Recipe, 0, len(views))
	for _, v := range views {
		recipes = append(recipes, v.Recipe)
	}
	return recipes, nil
}

// RecountRecipeStats resynchronizes the denormalized counters from their
// source-of-truth tables.
func (s *RecipeService) RecountRecipeStats(recipeID uint) error {
	var favorites, views int64
	if err := config.DB.Model(&models.FavoriteRecipe{}).
		Where("recipe_id = ?", recipeID).Count(&favorites).Error; err != nil {
		return err
	}
	if err := config.DB.Model(&models.RecipeView{}).
		Where("recipe_id = ?", recipeID).Count(&views).Error; err != nil {
		return err
	}
	return config.DB.Model(&models.Recipe{}).Where("id = ?", recipeID).
		UpdateColumns(map[string]interface{}{
			"favorites_count": favorites,
			"views_count":     views,
		}).Error
}

package services

import (
	"time"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"
)

type RecipeSummary struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	ViewsCount int        `json:"views_count,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

type Statistics struct {
	TotalRecipes      int64           `json:"total_recipes"`
	TotalFavorites    int64           `json:"total_favorites"`
	TotalViews        int64           `json:"total_views"`
	MostViewedRecipes []RecipeSummary `json:"most_viewed_recipes"`
	RecentRecipes     []RecipeSummary `json:"recent_recipes"`
}

// GetStatistics summarizes the caller's activity: own recipe count, favorite
// count, view count, top-5 most viewed and 5 most recent own recipes.
func GetStatistics(userID uint) (*Statistics, error) {
	stats := &Statistics{
		MostViewedRecipes: []RecipeSummary{},
		RecentRecipes:     []RecipeSummary{},
	}

	if err := config.DB.Model(&models.Recipe{}).
		Where("author_id = ?", userID).Count(&stats.TotalRecipes).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.FavoriteRecipe{}).
		Where("user_id = ?", userID).Count(&stats.TotalFavorites).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.RecipeView{}).
		Where("user_id = ?", userID).Count(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	var mostViewed []models.Recipe
	if err := config.DB.
		Where("author_id = ?", userID).
		Order("views_count DESC").
		Limit(5).
		Find(&mostViewed).Error; err != nil {
		return nil, err
	}
	for _, r := range mostViewed {
		stats.MostViewedRecipes = append(stats.MostViewedRecipes, RecipeSummary{
			ID: r.ID, Title: r.Title, ViewsCount: r.ViewsCount,
		})
	}

	var recent []models.Recipe
	if err := config.DB.
		Where("author_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, err
	}
	for _, r := range recent {
		created := r.CreatedAt
		stats.RecentRecipes = append(stats.RecentRecipes, RecipeSummary{
			ID: r.ID, Title: r.Title, CreatedAt: &created,
		})
	}

	return stats, nil
}

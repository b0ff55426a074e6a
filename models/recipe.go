package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	AuthorID    uint            `gorm:"not null;index" json:"author_id"`
	Author      User            `json:"author"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	CategoryID  *uint           `json:"category_id"`
	Category    *RecipeCategory `json:"category"`

	PrepTime      int `json:"prep_time"` // minutes
	CookTime      int `json:"cook_time"` // minutes
	Servings      int `json:"servings"`
	Difficulty    int `json:"difficulty"`     // 1-5
	EstimatedCost int `json:"estimated_cost"` // 1-3

	Instructions string         `json:"instructions"`
	Tags         datatypes.JSON `json:"tags"`
	MainImage    string         `json:"main_image"`

	ViewsCount     int `gorm:"default:0" json:"views_count"`
	FavoritesCount int `gorm:"default:0" json:"favorites_count"`

	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`

	Ingredients []Ingredient  `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Images      []RecipeImage `gorm:"constraint:OnDelete:CASCADE" json:"images"`
}

func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

type RecipeImage struct {
	gorm.Model
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	Image    string `gorm:"not null" json:"image"`
	Order    int    `gorm:"default:0" json:"order"`
}

type Ingredient struct {
	gorm.Model
	RecipeID       uint                `gorm:"not null;index" json:"recipe_id"`
	Name           string              `gorm:"not null" json:"name"`
	Quantity       decimal.Decimal     `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit           string              `json:"unit"`
	CategoryID     *uint               `json:"category_id"`
	Category       *IngredientCategory `json:"category"`
	EstimatedPrice decimal.Decimal     `gorm:"type:decimal(10,2);default:0" json:"estimated_price"`
	Order          int                 `gorm:"default:0" json:"order"`
}

// FavoriteRecipe carries no DeletedAt: unfavoriting removes the row for real,
// so the (user, recipe) unique index never blocks a later re-favorite.
type FavoriteRecipe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"user_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipe_id"`
	Recipe    Recipe    `json:"recipe"`
	CreatedAt time.Time `json:"created_at"`
}

// RecipeView is an append-only consultation log. Rows are never deduplicated:
// each retrieval of a recipe adds one.
type RecipeView struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	Recipe    Recipe    `json:"recipe"`
	IPAddress string    `json:"ip_address"`
	ViewedAt  time.Time `gorm:"autoCreateTime;index" json:"viewed_at"`
}

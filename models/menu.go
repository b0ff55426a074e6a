package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slots within a menu day.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func ValidMealType(m string) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type Menu struct {
	gorm.Model
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	Name      string       `gorm:"not null" json:"name"`
	StartDate time.Time    `gorm:"type:date" json:"start_date"`
	EndDate   time.Time    `gorm:"type:date" json:"end_date"`
	Recipes   []MenuRecipe `gorm:"constraint:OnDelete:CASCADE" json:"recipes"`
}

// MenuRecipe carries no DeletedAt for the same reason as FavoriteRecipe: a
// removed assignment must free its (menu, recipe, date, meal) slot.
type MenuRecipe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	MenuID    uint      `gorm:"not null;uniqueIndex:idx_menu_recipe_slot" json:"menu_id"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_menu_recipe_slot" json:"recipe_id"`
	Recipe    Recipe    `json:"recipe"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_menu_recipe_slot" json:"date"`
	MealType  string    `gorm:"size:20;uniqueIndex:idx_menu_recipe_slot" json:"meal_type"`
	CreatedAt time.Time `json:"created_at"`
}

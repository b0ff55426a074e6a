package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShoppingList struct {
	gorm.Model
	UserID uint               `gorm:"not null;index" json:"user_id"`
	Name   string             `gorm:"default:'Ma liste de courses'" json:"name"`
	Items  []ShoppingListItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// ShoppingListItem is a value snapshot: it copies name/quantity/unit from its
// source ingredient instead of referencing it, so later recipe edits never
// rewrite a list.
type ShoppingListItem struct {
	gorm.Model
	ShoppingListID uint                `gorm:"not null;index" json:"shopping_list_id"`
	IngredientName string              `gorm:"not null" json:"ingredient_name"`
	Quantity       decimal.Decimal     `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit           string              `json:"unit"`
	CategoryID     *uint               `json:"category_id"`
	Category       *IngredientCategory `json:"category"`
	IsChecked      bool                `gorm:"default:false" json:"is_checked"`
	Order          int                 `gorm:"default:0" json:"order"`
}

package services

import (
	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShoppingListService struct{}

func NewShoppingListService() *ShoppingListService {
	return &ShoppingListService{}
}

func (s *ShoppingListService) loadList(listID uint) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := config.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order(`"order", ingredient_name`) }).
		Preload("Items.Category").
		First(&list, listID).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &list, nil
}

// Get resolves a list scoped to its owner; foreign lists look missing.
func (s *ShoppingListService) Get(userID, listID uint) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := config.DB.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error; err != nil {
		return nil, ErrNotFound
	}
	return s.loadList(list.ID)
}

func (s *ShoppingListService) List(userID uint) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := config.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order(`"order", ingredient_name`) }).
		Preload("Items.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (s *ShoppingListService) Create(userID uint, name string) (*models.ShoppingList, error) {
	list := models.ShoppingList{UserID: userID}
	if name != "" {
		list.Name = name
	} else {
		list.Name = "Ma liste de courses"
	}
	if err := config.DB.Create(&list).Error; err != nil {
		return nil, err
	}
	return s.loadList(list.ID)
}

func (s *ShoppingListService) Rename(userID, listID uint, name string) (*models.ShoppingList, error) {
	list, err := s.Get(userID, listID)
	if err != nil {
		return nil, err
	}
	list.Name = name
	if err := config.DB.Save(list).Error; err != nil {
		return nil, err
	}
	return s.loadList(list.ID)
}

func (s *ShoppingListService) Delete(userID, listID uint) error {
	list, err := s.Get(userID, listID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", list.ID).Delete(&models.ShoppingListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ShoppingList{}, list.ID).Error
	})
}

type ShoppingListItemInput struct {
	IngredientName string          `json:"ingredient_name" binding:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	CategoryID     *uint           `json:"category_id"`
	IsChecked      bool            `json:"is_checked"`
	Order          int             `json:"order"`
}

func (s *ShoppingListService) AddItem(userID, listID uint, input ShoppingListItemInput) (*models.ShoppingListItem, error) {
	list, err := s.Get(userID, listID)
	if err != nil {
		return nil, err
	}

	item := models.ShoppingListItem{
		ShoppingListID: list.ID,
		IngredientName: input.IngredientName,
		Quantity:       input.Quantity,
		Unit:           input.Unit,
		CategoryID:     input.CategoryID,
		IsChecked:      input.IsChecked,
		Order:          input.Order,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

type ShoppingListItemUpdateInput struct {
	IngredientName *string          `json:"ingredient_name"`
	Quantity       *decimal.Decimal `json:"quantity"`
	Unit           *string          `json:"unit"`
	IsChecked      *bool            `json:"is_checked"`
	Order          *int             `json:"order"`
}

// UpdateItem mutates one item, scoped through the parent list's owner.
func (s *ShoppingListService) UpdateItem(userID, itemID uint, input ShoppingListItemUpdateInput) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	err := config.DB.
		Joins("JOIN shopping_lists ON shopping_lists.id = shopping_list_items.shopping_list_id").
		Where("shopping_list_items.id = ? AND shopping_lists.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, ErrNotFound
	}

	if input.IngredientName != nil {
		item.IngredientName = *input.IngredientName
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.IsChecked != nil {
		item.IsChecked = *input.IsChecked
	}
	if input.Order != nil {
		item.Order = *input.Order
	}

	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShoppingListService) DeleteItem(userID, itemID uint) error {
	var item models.ShoppingListItem
	err := config.DB.
		Joins("JOIN shopping_lists ON shopping_lists.id = shopping_list_items.shopping_list_id").
		Where("shopping_list_items.id = ? AND shopping_lists.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return ErrNotFound
	}
	return config.DB.Delete(&models.ShoppingListItem{}, item.ID).Error
}

// FromRecipe appends one snapshot item per ingredient of the recipe, in
// display order. No merging happens at this level; running it twice appends
// twice.
func (s *ShoppingListService) FromRecipe(userID, listID, recipeID uint) (*models.ShoppingList, error) {
	list, err := s.Get(userID, listID)
	if err != nil {
		return nil, err
	}

	var recipe models.Recipe
	err = config.DB.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		First(&recipe, recipeID).Error
	if err != nil {
		return nil, ErrNotFound
	}

	offset := len(list.Items)
	for i, ing := range recipe.Ingredients {
		item := models.ShoppingListItem{
			ShoppingListID: list.ID,
			IngredientName: ing.Name,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
			CategoryID:     ing.CategoryID,
			Order:          offset + i,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			return nil, err
		}
	}

	return s.loadList(list.ID)
}

type aggregationKey struct {
	Name string
	Unit string
}

type aggregatedIngredient struct {
	Name       string
	Quantity   decimal.Decimal
	Unit       string
	CategoryID *uint
}

// aggregateIngredients merges ingredient rows by exact (name, unit) key,
// summing quantities with exact decimal arithmetic. Groups come out in
// first-encounter order and keep the first-seen category. Units are not
// normalized: "g" and "grams" stay distinct.
func aggregateIngredients(ingredients []models.Ingredient) []aggregatedIngredient {
	groups := make(map[aggregationKey]int)
	var out []aggregatedIngredient

	for _, ing := range ingredients {
		key := aggregationKey{Name: ing.Name, Unit: ing.Unit}
		if idx, seen := groups[key]; seen {
			out[idx].Quantity = out[idx].Quantity.Add(ing.Quantity)
			continue
		}
		groups[key] = len(out)
		out = append(out, aggregatedIngredient{
			Name:       ing.Name,
			Quantity:   ing.Quantity,
			Unit:       ing.Unit,
			CategoryID: ing.CategoryID,
		})
	}
	return out
}

// FromMenu flattens every recipe assignment of the menu (all dates and meal
// slots) and appends one item per aggregated (name, unit) group. Like
// FromRecipe it is additive into the target list.
func (s *ShoppingListService) FromMenu(userID, listID, menuID uint) (*models.ShoppingList, error) {
	list, err := s.Get(userID, listID)
	if err != nil {
		return nil, err
	}

	// Ownership by existence-filtering: a foreign menu is a missing menu.
	var menu models.Menu
	err = config.DB.
		Preload("Recipes", func(db *gorm.DB) *gorm.DB { return db.Order("date, meal_type") }).
		Preload("Recipes.Recipe.Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order(`"order"`) }).
		Where("id = ? AND user_id = ?", menuID, userID).
		First(&menu).Error
	if err != nil {
		return nil, ErrNotFound
	}

	var all []models.Ingredient
	for _, mr := range menu.Recipes {
		all = append(all, mr.Recipe.Ingredients...)
	}

	offset := len(list.Items)
	for i, group := range aggregateIngredients(all) {
		item := models.ShoppingListItem{
			ShoppingListID: list.ID,
			IngredientName: group.Name,
			Quantity:       group.Quantity,
			Unit:           group.Unit,
			CategoryID:     group.CategoryID,
			Order:          offset + i,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			return nil, err
		}
	}

	return s.loadList(list.ID)
}

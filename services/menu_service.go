package services

import (
	"errors"
	"time"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"

	"gorm.io/gorm"
)

type MenuService struct{}

func NewMenuService() *MenuService {
	return &MenuService{}
}

func (s *MenuService) loadMenu(menuID uint) (*models.Menu, error) {
	var menu models.Menu
	err := config.DB.
		Preload("Recipes", func(db *gorm.DB) *gorm.DB { return db.Order("date, meal_type") }).
		Preload("Recipes.Recipe").
		First(&menu, menuID).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &menu, nil
}

func (s *MenuService) List(userID uint) ([]models.Menu, error) {
	var menus []models.Menu
	err := config.DB.
		Preload("Recipes", func(db *gorm.DB) *gorm.DB { return db.Order("date, meal_type") }).
		Preload("Recipes.Recipe").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&menus).Error
	return menus, err
}

func (s *MenuService) Get(userID, menuID uint) (*models.Menu, error) {
	var menu models.Menu
	if err := config.DB.Where("id = ? AND user_id = ?", menuID, userID).First(&menu).Error; err != nil {
		return nil, ErrNotFound
	}
	return s.loadMenu(menu.ID)
}

func (s *MenuService) Create(userID uint, name string, startDate, endDate time.Time) (*models.Menu, error) {
	menu := models.Menu{
		UserID:    userID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		return nil, err
	}
	return s.loadMenu(menu.ID)
}

func (s *MenuService) Delete(userID, menuID uint) error {
	menu, err := s.Get(userID, menuID)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.MenuRecipe{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Menu{}, menu.ID).Error
	})
}

// AddRecipe schedules a recipe on one (date, meal) slot of the menu. The
// (menu, recipe, date, meal) combination is unique.
func (s *MenuService) AddRecipe(userID, menuID, recipeID uint, date time.Time, mealType string) (*models.MenuRecipe, error) {
	if mealType == "" {
		mealType = models.MealDinner
	}
	if !models.ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}

	menu, err := s.Get(userID, menuID)
	if err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := config.DB.First(&recipe, recipeID).Error; err != nil {
		return nil, ErrNotFound
	}

	var count int64
	config.DB.Model(&models.MenuRecipe{}).
		Where("menu_id = ? AND recipe_id = ? AND date = ? AND meal_type = ?",
			menu.ID, recipe.ID, date, mealType).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicateSlot
	}

	assignment := models.MenuRecipe{
		MenuID:   menu.ID,
		RecipeID: recipe.ID,
		Date:     date,
		MealType: mealType,
	}
	if err := config.DB.Create(&assignment).Error; err != nil {
		return nil, err
	}

	err = config.DB.Preload("Recipe").First(&assignment, assignment.ID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &assignment, nil
}

package services

import (
	"testing"
	"time"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global handle at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}

func createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return &user
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type ingredientFixture struct {
	Name     string
	Quantity string
	Unit     string
	Category *uint
}

func createRecipe(t *testing.T, authorID uint, title string, published bool, ingredients ...ingredientFixture) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		AuthorID:    authorID,
		Title:       title,
		Servings:    4,
		IsPublished: published,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		t.Fatalf("create recipe %s: %v", title, err)
	}
	for idx, f := range ingredients {
		ing := models.Ingredient{
			RecipeID:   recipe.ID,
			Name:       f.Name,
			Quantity:   dec(f.Quantity),
			Unit:       f.Unit,
			CategoryID: f.Category,
			Order:      idx,
		}
		if err := config.DB.Create(&ing).Error; err != nil {
			t.Fatalf("create ingredient %s: %v", f.Name, err)
		}
	}
	return &recipe
}

func createMenu(t *testing.T, userID uint, name string) *models.Menu {
	t.Helper()
	menu := models.Menu{
		UserID:    userID,
		Name:      name,
		StartDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
	}
	if err := config.DB.Create(&menu).Error; err != nil {
		t.Fatalf("create menu %s: %v", name, err)
	}
	return &menu
}

func planRecipe(t *testing.T, menuID, recipeID uint, day int, meal string) {
	t.Helper()
	mr := models.MenuRecipe{
		MenuID:   menuID,
		RecipeID: recipeID,
		Date:     time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		MealType: meal,
	}
	if err := config.DB.Create(&mr).Error; err != nil {
		t.Fatalf("plan recipe %d on day %d: %v", recipeID, day, err)
	}
}

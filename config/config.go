package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Yvancedric/partage-recettes-optimisation/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate runs schema migration on the given handle. Split out of InitDB so
// tests can migrate an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DietaryRestriction{},
		&models.Allergy{},
		&models.RecipeCategory{},
		&models.IngredientCategory{},
		&models.Recipe{},
		&models.RecipeImage{},
		&models.Ingredient{},
		&models.FavoriteRecipe{},
		&models.RecipeView{},
		&models.ShoppingList{},
		&models.ShoppingListItem{},
		&models.Menu{},
		&models.MenuRecipe{},
	)
}

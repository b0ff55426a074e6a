package routes

import (
	"github.com/Yvancedric/partage-recettes-optimisation/controllers"
	"github.com/Yvancedric/partage-recettes-optimisation/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/refresh", controllers.Refresh)
		auth.POST("/password-reset", controllers.RequestPasswordReset)
		auth.POST("/password-reset/confirm", controllers.ConfirmPasswordReset)
		auth.POST("/password-reset/validate_token", controllers.ValidateResetToken)
		auth.GET("/social/callback", middlewares.OptionalAuthMiddleware(), controllers.SocialCallback)
	}

	// Reference catalogs, public
	r.GET("/recipe-categories", controllers.ListRecipeCategories)
	r.GET("/ingredient-categories", controllers.ListIngredientCategories)
	r.GET("/dietary-restrictions", controllers.ListDietaryRestrictions)
	r.GET("/allergies", controllers.ListAllergies)

	// Recipe catalog: public reads with optional identity, protected writes.
	// Caller-scoped listings are registered before the :id routes so the
	// literal paths win.
	recipes := r.Group("/recipes")
	{
		recipes.GET("", middlewares.OptionalAuthMiddleware(), controllers.ListRecipes)
		recipes.GET("/my_recipes", middlewares.AuthMiddleware(), controllers.MyRecipes)
		recipes.GET("/favorites", middlewares.AuthMiddleware(), controllers.FavoriteRecipes)
		recipes.GET("/history", middlewares.AuthMiddleware(), controllers.RecipeHistory)
		recipes.GET("/:id", middlewares.OptionalAuthMiddleware(), controllers.GetRecipe)

		recipes.POST("", middlewares.AuthMiddleware(), controllers.CreateRecipe)
		recipes.PUT("/:id", middlewares.AuthMiddleware(), controllers.UpdateRecipe)
		recipes.PATCH("/:id", middlewares.AuthMiddleware(), controllers.UpdateRecipe)
		recipes.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteRecipe)
		recipes.POST("/:id/favorite", middlewares.AuthMiddleware(), controllers.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", middlewares.AuthMiddleware(), controllers.UnfavoriteRecipe)
	}

	// Users and profiles
	users := r.Group("/users", middlewares.AuthMiddleware())
	{
		users.GET("/me", controllers.GetMe)
		users.PUT("/me", controllers.UpdateMe)
		users.PATCH("/me", controllers.UpdateMe)
	}
	profiles := r.Group("/profiles", middlewares.AuthMiddleware())
	{
		profiles.GET("/me", controllers.GetMyProfile)
		profiles.PUT("/me", controllers.UpdateMyProfile)
		profiles.PATCH("/me", controllers.UpdateMyProfile)
	}

	// Shopping lists
	lists := r.Group("/shopping-lists", middlewares.AuthMiddleware())
	{
		lists.GET("", controllers.ListShoppingLists)
		lists.POST("", controllers.CreateShoppingList)
		lists.GET("/:id", controllers.GetShoppingList)
		lists.PUT("/:id", controllers.UpdateShoppingList)
		lists.PATCH("/:id", controllers.UpdateShoppingList)
		lists.DELETE("/:id", controllers.DeleteShoppingList)
		lists.POST("/:id/add_item", controllers.AddShoppingListItem)
		lists.POST("/:id/from_recipe", controllers.ShoppingListFromRecipe)
		lists.POST("/:id/from_menu", controllers.ShoppingListFromMenu)
	}
	items := r.Group("/shopping-list-items", middlewares.AuthMiddleware())
	{
		items.PUT("/:id", controllers.UpdateShoppingListItem)
		items.PATCH("/:id", controllers.UpdateShoppingListItem)
		items.DELETE("/:id", controllers.DeleteShoppingListItem)
	}

	// Menus
	menus := r.Group("/menus", middlewares.AuthMiddleware())
	{
		menus.GET("", controllers.ListMenus)
		menus.POST("", controllers.CreateMenu)
		menus.GET("/:id", controllers.GetMenu)
		menus.DELETE("/:id", controllers.DeleteMenu)
		menus.POST("/:id/add_recipe", controllers.AddRecipeToMenu)
	}

	r.GET("/statistics", middlewares.AuthMiddleware(), controllers.GetStatistics)

	return r
}

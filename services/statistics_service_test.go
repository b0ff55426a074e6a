package services

import (
	"fmt"
	"testing"
)

func TestStatistics(t *testing.T) {
	setupTestDB(t)
	recipeSvc := NewRecipeService()
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")

	var recipes []uint
	for i := 0; i < 7; i++ {
		r := createRecipe(t, alice.ID, fmt.Sprintf("Recette %d", i), true)
		recipes = append(recipes, r.ID)
	}

	// Recipe 3 viewed twice, recipe 5 once.
	for _, id := range []uint{recipes[3], recipes[3], recipes[5]} {
		if _, err := recipeSvc.Retrieve(alice.ID, id, ""); err != nil {
			t.Fatalf("retrieve: %v", err)
		}
	}
	if err := recipeSvc.Favorite(alice.ID, recipes[0]); err != nil {
		t.Fatalf("favorite: %v", err)
	}

	stats, err := GetStatistics(alice.ID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalRecipes != 7 {
		t.Fatalf("total_recipes = %d, want 7", stats.TotalRecipes)
	}
	if stats.TotalFavorites != 1 {
		t.Fatalf("total_favorites = %d, want 1", stats.TotalFavorites)
	}
	if stats.TotalViews != 3 {
		t.Fatalf("total_views = %d, want 3", stats.TotalViews)
	}
	if len(stats.MostViewedRecipes) != 5 || len(stats.RecentRecipes) != 5 {
		t.Fatalf("summaries capped at 5, got %d/%d", len(stats.MostViewedRecipes), len(stats.RecentRecipes))
	}
	if stats.MostViewedRecipes[0].ID != recipes[3] || stats.MostViewedRecipes[0].ViewsCount != 2 {
		t.Fatalf("unexpected most viewed: %+v", stats.MostViewedRecipes[0])
	}

	// Another user's activity stays out of the caller's numbers.
	bobStats, err := GetStatistics(bob.ID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if bobStats.TotalRecipes != 0 || bobStats.TotalViews != 0 || bobStats.TotalFavorites != 0 {
		t.Fatalf("bob should have empty stats: %+v", bobStats)
	}
}

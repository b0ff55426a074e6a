package services

import (
	"errors"
	"testing"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"
)

func TestFromRecipeSnapshotsInOrder(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	user := createUser(t, "alice")
	recipe := createRecipe(t, user.ID, "Crêpes", true,
		ingredientFixture{Name: "Flour", Quantity: "250.00", Unit: "g"},
		ingredientFixture{Name: "Milk", Quantity: "0.50", Unit: "l"},
		ingredientFixture{Name: "Eggs", Quantity: "3.00", Unit: ""},
	)
	list, err := svc.Create(user.ID, "courses")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}

	got, err := svc.FromRecipe(user.ID, list.ID, recipe.ID)
	if err != nil {
		t.Fatalf("from recipe: %v", err)
	}
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got.Items))
	}
	if got.Items[0].IngredientName != "Flour" || !got.Items[0].Quantity.Equal(dec("250.00")) {
		t.Fatalf("unexpected first item: %+v", got.Items[0])
	}
}

func TestFromRecipePreservesDuplicates(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	user := createUser(t, "alice")
	// Same name twice on one recipe: no merge at this level.
	recipe := createRecipe(t, user.ID, "Double", true,
		ingredientFixture{Name: "Sugar", Quantity: "10.00", Unit: "g"},
		ingredientFixture{Name: "Sugar", Quantity: "20.00", Unit: "g"},
	)
	list, _ := svc.Create(user.ID, "courses")

	got, err := svc.FromRecipe(user.ID, list.ID, recipe.ID)
	if err != nil {
		t.Fatalf("from recipe: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected duplicates preserved, got %d items", len(got.Items))
	}
}

func TestFromRecipeIsAdditive(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	user := createUser(t, "alice")
	recipe := createRecipe(t, user.ID, "Crêpes", true,
		ingredientFixture{Name: "Flour", Quantity: "250.00", Unit: "g"},
	)
	list, _ := svc.Create(user.ID, "courses")

	if _, err := svc.FromRecipe(user.ID, list.ID, recipe.ID); err != nil {
		t.Fatalf("first derivation: %v", err)
	}
	got, err := svc.FromRecipe(user.ID, list.ID, recipe.ID)
	if err != nil {
		t.Fatalf("second derivation: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("derivation must append, expected 2 items, got %d", len(got.Items))
	}
}

func TestFromMenuAggregatesByNameAndUnit(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	user := createUser(t, "alice")
	catID := uint(1)
	if err := config.DB.Create(&models.IngredientCategory{Name: "Baking"}).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	r1 := createRecipe(t, user.ID, "Bread", true,
		ingredientFixture{Name: "Flour", Quantity: "500.00", Unit: "g", Category: &catID},
		ingredientFixture{Name: "Flour", Quantity: "1.00", Unit: "grams"}, // distinct unit, distinct key
		ingredientFixture{Name: "Salt", Quantity: "0.10", Unit: "g"},
	)
	r2 := createRecipe(t, user.ID, "Cake", true,
		ingredientFixture{Name: "Flour", Quantity: "250.50", Unit: "g"},
		ingredientFixture{Name: "Salt", Quantity: "0.20", Unit: "g"},
	)

	menu := createMenu(t, user.ID, "semaine")
	planRecipe(t, menu.ID, r1.ID, 2, models.MealLunch)
	planRecipe(t, menu.ID, r2.ID, 2, models.MealDinner)
	planRecipe(t, menu.ID, r2.ID, 3, models.MealDinner) // same recipe twice counts twice

	list, _ := svc.Create(user.ID, "courses")
	got, err := svc.FromMenu(user.ID, list.ID, menu.ID)
	if err != nil {
		t.Fatalf("from menu: %v", err)
	}

	byKey := map[string]models.ShoppingListItem{}
	for _, it := range got.Items {
		byKey[it.IngredientName+"|"+it.Unit] = it
	}
	if len(byKey) != 3 {
		t.Fatalf("expected 3 groups, got %d: %+v", len(byKey), got.Items)
	}
	// 500.00 + 250.50 + 250.50
	if !byKey["Flour|g"].Quantity.Equal(dec("1001.00")) {
		t.Fatalf("Flour|g = %s, want 1001.00", byKey["Flour|g"].Quantity)
	}
	// "grams" is not normalized into "g"
	if !byKey["Flour|grams"].Quantity.Equal(dec("1.00")) {
		t.Fatalf("Flour|grams = %s, want 1.00", byKey["Flour|grams"].Quantity)
	}
	// 0.10 + 0.20 + 0.20 must be exact, not 0.50000000001
	if !byKey["Salt|g"].Quantity.Equal(dec("0.50")) {
		t.Fatalf("Salt|g = %s, want 0.50", byKey["Salt|g"].Quantity)
	}
	// category of the first-encountered ingredient wins
	if byKey["Flour|g"].CategoryID == nil || *byKey["Flour|g"].CategoryID != catID {
		t.Fatalf("Flour|g lost its first-encounter category: %+v", byKey["Flour|g"])
	}
}

func TestFromMenuEmissionFollowsPlanningOrder(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	user := createUser(t, "alice")
	late := createRecipe(t, user.ID, "Stew", true,
		ingredientFixture{Name: "Beef", Quantity: "500.00", Unit: "g"},
	)
	early := createRecipe(t, user.ID, "Salad", true,
		ingredientFixture{Name: "Tomato", Quantity: "2.00", Unit: ""},
	)

	// Insert the later slot first: emission must follow (date, meal), not
	// insertion order.
	menu := createMenu(t, user.ID, "semaine")
	planRecipe(t, menu.ID, late.ID, 5, models.MealDinner)
	planRecipe(t, menu.ID, early.ID, 2, models.MealLunch)

	list, _ := svc.Create(user.ID, "courses")
	got, err := svc.FromMenu(user.ID, list.ID, menu.ID)
	if err != nil {
		t.Fatalf("from menu: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].IngredientName != "Tomato" || got.Items[1].IngredientName != "Beef" {
		t.Fatalf("items out of planning order: %+v", got.Items)
	}
}

func TestFromMenuTwiceDoublesQuantities(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	user := createUser(t, "alice")
	r := createRecipe(t, user.ID, "Bread", true,
		ingredientFixture{Name: "Flour", Quantity: "500.00", Unit: "g"},
	)
	menu := createMenu(t, user.ID, "semaine")
	planRecipe(t, menu.ID, r.ID, 2, models.MealDinner)

	list, _ := svc.Create(user.ID, "courses")
	if _, err := svc.FromMenu(user.ID, list.ID, menu.ID); err != nil {
		t.Fatalf("first derivation: %v", err)
	}
	got, err := svc.FromMenu(user.ID, list.ID, menu.ID)
	if err != nil {
		t.Fatalf("second derivation: %v", err)
	}

	total := dec("0")
	for _, it := range got.Items {
		total = total.Add(it.Quantity)
	}
	if len(got.Items) != 2 || !total.Equal(dec("1000.00")) {
		t.Fatalf("expected doubled append, got %d items totalling %s", len(got.Items), total)
	}
}

func TestFromMenuForeignMenuLooksMissing(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	r := createRecipe(t, bob.ID, "Bread", true,
		ingredientFixture{Name: "Flour", Quantity: "500.00", Unit: "g"},
	)
	bobMenu := createMenu(t, bob.ID, "semaine")
	planRecipe(t, bobMenu.ID, r.ID, 2, models.MealDinner)

	list, _ := svc.Create(alice.ID, "courses")
	if _, err := svc.FromMenu(alice.ID, list.ID, bobMenu.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign menu, got %v", err)
	}
}

func TestFromRecipeMissingRecipe(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	user := createUser(t, "alice")
	list, _ := svc.Create(user.ID, "courses")

	if _, err := svc.FromRecipe(user.ID, list.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestForeignListLooksMissing(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	list, _ := svc.Create(alice.ID, "courses")

	if _, err := svc.Get(bob.ID, list.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign list, got %v", err)
	}
}

func TestItemUpdateScopedToOwner(t *testing.T) {
	setupTestDB(t)
	svc := NewShoppingListService()
	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	list, _ := svc.Create(alice.ID, "courses")
	item, err := svc.AddItem(alice.ID, list.ID, ShoppingListItemInput{
		IngredientName: "Flour",
		Quantity:       dec("1.00"),
		Unit:           "kg",
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	checked := true
	if _, err := svc.UpdateItem(bob.ID, item.ID, ShoppingListItemUpdateInput{IsChecked: &checked}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign item update should look missing, got %v", err)
	}
	updated, err := svc.UpdateItem(alice.ID, item.ID, ShoppingListItemUpdateInput{IsChecked: &checked})
	if err != nil {
		t.Fatalf("owner item update: %v", err)
	}
	if !updated.IsChecked {
		t.Fatalf("expected item to be checked")
	}
}

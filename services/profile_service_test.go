package services

import (
	"testing"

	"github.com/Yvancedric/partage-recettes-optimisation/config"
	"github.com/Yvancedric/partage-recettes-optimisation/models"

	"gorm.io/datatypes"
)

func TestProfileCreatedOnFirstAccess(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "alice")

	var count int64
	config.DB.Model(&models.UserProfile{}).Count(&count)
	if count != 0 {
		t.Fatalf("no profile should exist yet")
	}

	profile, err := GetOrCreateProfile(user.ID)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if profile.UserID != user.ID {
		t.Fatalf("profile bound to %d, want %d", profile.UserID, user.ID)
	}

	again, err := GetOrCreateProfile(user.ID)
	if err != nil {
		t.Fatalf("second access: %v", err)
	}
	if again.ID != profile.ID {
		t.Fatalf("second access created a new profile")
	}
}

func TestProfileUpdateReplacesSets(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "alice")

	vegan := models.DietaryRestriction{Name: "Vegan"}
	glutenFree := models.DietaryRestriction{Name: "Sans gluten"}
	peanuts := models.Allergy{Name: "Arachides"}
	config.DB.Create(&vegan)
	config.DB.Create(&glutenFree)
	config.DB.Create(&peanuts)

	restrictions := []uint{vegan.ID, glutenFree.ID}
	allergies := []uint{peanuts.ID}
	prefs := datatypes.JSON([]byte(`{"spice_level":"hot"}`))
	profile, err := UpdateProfile(user.ID, ProfileUpdateInput{
		DietaryRestrictionIDs: &restrictions,
		AllergyIDs:            &allergies,
		FoodPreferences:       &prefs,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(profile.DietaryRestrictions) != 2 || len(profile.Allergies) != 1 {
		t.Fatalf("sets not applied: %+v", profile)
	}

	// Supplying a smaller set replaces, omitting leaves untouched.
	restrictions = []uint{vegan.ID}
	profile, err = UpdateProfile(user.ID, ProfileUpdateInput{DietaryRestrictionIDs: &restrictions})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(profile.DietaryRestrictions) != 1 || profile.DietaryRestrictions[0].Name != "Vegan" {
		t.Fatalf("restriction set not replaced: %+v", profile.DietaryRestrictions)
	}
	if len(profile.Allergies) != 1 {
		t.Fatalf("omitted allergy set must stay, got %+v", profile.Allergies)
	}
	if string(profile.FoodPreferences) == "" {
		t.Fatalf("preferences lost on partial update")
	}
}

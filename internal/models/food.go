package models

import (
	"fmt"

	"github.com/foodlog-app/backend/internal/docstore"
)

// Meal is the closed set of meal types a food entry can belong to.
type Meal string

const (
	MealBreakfast Meal = "Breakfast"
	MealLunch     Meal = "Lunch"
	MealDinner    Meal = "Dinner"
	MealSnack     Meal = "Snack"
)

// ParseMeal maps free text onto the closed meal set. Unrecognized values are
// an error rather than a silent passthrough.
func ParseMeal(s string) (Meal, error) {
	switch Meal(s) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return Meal(s), nil
	}
	return "", fmt.Errorf("unknown meal %q", s)
}

// Food is a single logged food entry. The date is free-form text and the
// image URL is empty when the entry has no photo.
type Food struct {
	ID        string `json:"id"`
	FoodName  string `json:"foodname"`
	Meal      Meal   `json:"meal"`
	Date      string `json:"fooddate_at"`
	ImageURL  string `json:"food_image_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FoodFromDocument rebuilds a Food from its stored field map.
func FoodFromDocument(d docstore.Document) Food {
	return Food{
		ID:        d.ID,
		FoodName:  str(d.Fields, "foodname"),
		Meal:      Meal(str(d.Fields, "meal")),
		Date:      str(d.Fields, "fooddate_at"),
		ImageURL:  str(d.Fields, "food_image_url"),
		CreatedAt: str(d.Fields, "created_at"),
		UpdatedAt: str(d.Fields, "updated_at"),
	}
}

func str(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

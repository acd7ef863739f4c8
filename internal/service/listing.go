package service

import (
	"strings"

	"github.com/foodlog-app/backend/internal/models"
)

// PageSize is the fixed number of rows per dashboard page.
const PageSize = 5

// FoodPage is one page of a filtered listing.
type FoodPage struct {
	Items      []models.Food `json:"foods"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
}

// FilterFoods keeps the entries whose name contains the term,
// case-insensitively. An empty term keeps everything, in order.
func FilterFoods(foods []models.Food, term string) []models.Food {
	if term == "" {
		return foods
	}
	needle := strings.ToLower(term)
	filtered := make([]models.Food, 0, len(foods))
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.FoodName), needle) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// PaginateFoods slices one page out of the filtered collection. The page
// index is clamped to [1, max(1, ceil(len/PageSize))], so walking past either
// bound is a no-op.
func PaginateFoods(foods []models.Food, page int) FoodPage {
	total := len(foods)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return FoodPage{
		Items:      foods[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

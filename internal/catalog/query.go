package catalog

import (
	"sort"
	"strings"

	"github.com/chenmo1212/foodorder/internal/models"
)

// Filter returns the dishes matching both the category and the search text,
// ordered by descending order count. The sort is stable: dishes with equal
// counts keep their catalog order.
func Filter(dishes []models.Dish, category, search string) []models.Dish {
	search = strings.ToLower(search)

	var out []models.Dish
	for _, d := range dishes {
		if category != models.CategoryAll && d.Category != category {
			continue
		}
		if search != "" && !matchesSearch(&d, search) {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderCount > out[j].OrderCount
	})
	return out
}

// matchesSearch does a case-insensitive substring match against the dish's
// names, category, descriptions and English ingredient list. Any single
// field matching is enough.
func matchesSearch(d *models.Dish, search string) bool {
	fields := []string{d.Name, d.NameEn, d.Category, d.Description, d.DescriptionEn}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	for _, ing := range d.IngredientsEn {
		if strings.Contains(strings.ToLower(ing), search) {
			return true
		}
	}
	return false
}

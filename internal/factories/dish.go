package factories

import (
	"fmt"
	"math/rand"

	"github.com/chenmo1212/foodorder/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

type DishFactory struct{}

// CreateDish fabricates a plausible dish for seeding demo databases.
func (df *DishFactory) CreateDish(dishID int) models.Dish {
	category := models.DishCategories[rand.Intn(len(models.DishCategories))]
	name := generateRandomDishName(category)
	return models.Dish{
		DishID:        dishID,
		Name:          name,
		NameEn:        name,
		Price:         fake.Float64(2, 5, 30),
		Stock:         rand.Intn(25) + 5,
		OrderCount:    rand.Intn(50),
		Category:      category,
		Description:   fake.Lorem().Sentence(10),
		DescriptionEn: fake.Lorem().Sentence(10),
		Ingredients:   generateRandomIngredients(),
		IngredientsEn: generateRandomIngredients(),
		Nutrition: models.Nutrition{
			Calories: rand.Intn(400) + 50,
			Protein:  fmt.Sprintf("%dg", rand.Intn(20)+2),
			Fat:      fmt.Sprintf("%dg", rand.Intn(15)+1),
			Carbs:    fmt.Sprintf("%dg", rand.Intn(30)+2),
		},
		IsActive: true,
	}
}

func generateRandomIngredients() []string {
	allIngredients := []string{"Chicken", "Beef", "Pork", "Fish", "Tofu", "Cheese", "Tomato", "Lettuce", "Onion", "Garlic", "Rice", "Egg", "Scallions", "Soy Sauce", "Ginger"}
	ingredientCount := rand.Intn(4) + 3 // 3 to 6 ingredients
	ingredients := make([]string, ingredientCount)
	for i := 0; i < ingredientCount; i++ {
		ingredients[i] = allIngredients[rand.Intn(len(allIngredients))]
	}
	return ingredients
}

func generateRandomDishName(category string) string {
	names := map[string][]string{
		models.CategoryPork:       {"Braised Pork Belly", "Sweet and Sour Pork", "Twice Cooked Pork", "Pork Rib Soup"},
		models.CategoryChicken:    {"Kung Pao Chicken", "Three Cup Chicken", "Chicken with Cashews", "Steamed Chicken"},
		models.CategorySeafood:    {"Steamed Fish", "Garlic Shrimp", "Braised Prawns", "Fish Fillet in Broth"},
		models.CategoryVegetables: {"Garlic Bok Choy", "Dry Fried Green Beans", "Eggplant in Garlic Sauce", "Stir Fried Spinach"},
		models.CategoryOther:      {"Egg Fried Rice", "Scallion Pancake", "Hot and Sour Soup", "Dan Dan Noodles"},
	}
	if pool, ok := names[category]; ok {
		return pool[rand.Intn(len(pool))]
	}
	return "Special of the Day"
}

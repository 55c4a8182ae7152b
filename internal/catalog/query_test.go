package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenmo1212/foodorder/internal/models"
)

func testDishes() []models.Dish {
	return []models.Dish{
		{DishID: 1, Name: "麻婆豆腐", NameEn: "Mapo Tofu", Category: models.CategoryPork, OrderCount: 45, IngredientsEn: []string{"Tofu", "Minced Pork"}},
		{DishID: 2, Name: "宫保鸡丁", NameEn: "Kung Pao Chicken", Category: models.CategoryChicken, OrderCount: 45, IngredientsEn: []string{"Chicken", "Peanuts"}},
		{DishID: 3, Name: "清蒸鲈鱼", NameEn: "Steamed Sea Bass", Category: models.CategorySeafood, OrderCount: 12, IngredientsEn: []string{"Sea Bass"}},
		{DishID: 5, Name: "白灼西兰花", NameEn: "Blanched Broccoli", Category: models.CategoryVegetables, OrderCount: 60, IngredientsEn: []string{"Broccoli", "Garlic"}},
	}
}

func TestFilterAllSortsByPopularity(t *testing.T) {
	got := Filter(testDishes(), models.CategoryAll, "")

	require.Len(t, got, 4)
	assert.Equal(t, 5, got[0].DishID)
	// equal counts keep catalog order
	assert.Equal(t, 1, got[1].DishID)
	assert.Equal(t, 2, got[2].DishID)
	assert.Equal(t, 3, got[3].DishID)
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(testDishes(), models.CategoryVegetables, "")
	require.Len(t, got, 1)
	assert.Equal(t, "Blanched Broccoli", got[0].NameEn)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(testDishes(), models.CategoryAll, "BROCCOLI")
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].DishID)
}

func TestFilterSearchMatchesIngredients(t *testing.T) {
	got := Filter(testDishes(), models.CategoryAll, "peanut")
	require.Len(t, got, 1)
	assert.Equal(t, "Kung Pao Chicken", got[0].NameEn)
}

func TestFilterCombinesCategoryAndSearch(t *testing.T) {
	assert.Empty(t, Filter(testDishes(), models.CategoryPork, "broccoli"))

	got := Filter(testDishes(), models.CategoryVegetables, "garlic")
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].DishID)
}

func TestFilterChineseName(t *testing.T) {
	got := Filter(testDishes(), models.CategoryAll, "麻婆")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].DishID)
}

type fakeSource struct {
	dishes []models.Dish
	err    error
}

func (s *fakeSource) FetchDishes(context.Context) ([]models.Dish, error) {
	return s.dishes, s.err
}

func TestStoreStartsWithBundledMenu(t *testing.T) {
	s := NewStore()
	assert.False(t, s.FromRemote())
	assert.NotEmpty(t, s.Dishes())

	d, ok := s.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "Mapo Tofu", d.NameEn)
}

func TestStoreLoadReplacesMenu(t *testing.T) {
	s := NewStore()
	remote := []models.Dish{{DishID: 99, NameEn: "Remote Special", Category: models.CategoryOther}}

	require.NoError(t, s.Load(context.Background(), &fakeSource{dishes: remote}))
	assert.True(t, s.FromRemote())
	require.Len(t, s.Dishes(), 1)
	assert.Equal(t, 99, s.Dishes()[0].DishID)
}

func TestStoreLoadFailureKeepsBundledMenu(t *testing.T) {
	s := NewStore()
	before := len(s.Dishes())

	err := s.Load(context.Background(), &fakeSource{err: errors.New("network down")})
	assert.Error(t, err)
	assert.False(t, s.FromRemote())
	assert.Len(t, s.Dishes(), before)
}

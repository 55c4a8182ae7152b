package catalog

import "github.com/chenmo1212/foodorder/internal/models"

// BundledDishes is the static fallback menu, used when the remote catalog
// cannot be reached. Availability over freshness.
var BundledDishes = []models.Dish{
	{
		DishID: 1, Name: "麻婆豆腐", NameEn: "Mapo Tofu",
		Price: 12.99, Stock: 15, OrderCount: 4, Category: models.CategoryPork,
		ImageURL:      "/assets/dishCovers/mapo_tofu.png",
		Description:   "经典川菜，麻辣鲜香的豆腐配上香浓的肉末，口感嫩滑，回味无穷。",
		DescriptionEn: "Classic Sichuan dish with silky tofu in spicy sauce, topped with minced pork.",
		Ingredients:   []string{"豆腐", "猪肉末", "豆瓣酱", "花椒", "葱姜蒜"},
		IngredientsEn: []string{"Tofu", "Minced Pork", "Doubanjiang", "Sichuan Pepper", "Scallions"},
		Nutrition:     models.Nutrition{Calories: 93, Protein: "6g", Fat: "5g", Carbs: "6.7g"},
		IsActive:      true,
	},
	{
		DishID: 2, Name: "番茄炒蛋", NameEn: "Tomato Egg Stir Fry",
		Price: 9.99, Stock: 20, OrderCount: 4, Category: models.CategoryVegetables,
		ImageURL:      "/assets/dishCovers/tomato_egg_stir_fry.png",
		Description:   "家常经典菜品，酸甜可口的番茄配上嫩滑的鸡蛋，营养丰富，老少皆宜。",
		DescriptionEn: "A beloved home-style dish featuring sweet and tangy tomatoes with fluffy scrambled eggs.",
		Ingredients:   []string{"番茄", "鸡蛋", "葱", "糖", "盐"},
		IngredientsEn: []string{"Tomatoes", "Eggs", "Scallions", "Sugar", "Salt"},
		Nutrition:     models.Nutrition{Calories: 73, Protein: "4g", Fat: "4.7g", Carbs: "5g"},
		IsActive:      true,
	},
	{
		DishID: 3, Name: "肉末炒豆腐", NameEn: "Minced Meat Fried Tofu",
		Price: 13.99, Stock: 12, OrderCount: 1, Category: models.CategoryPork,
		ImageURL:      "/assets/dishCovers/minced_meat_fried_tofu.png",
		Description:   "油炸豆腐配上鲜美的肉末，口感丰富，咸香适中，下饭佳品。",
		DescriptionEn: "Fried tofu with savory minced meat. Rich flavors and varied textures make it perfect with rice.",
		Ingredients:   []string{"豆腐", "猪肉末", "青椒", "酱油", "蒜"},
		IngredientsEn: []string{"Tofu", "Minced Pork", "Green Pepper", "Soy Sauce", "Garlic"},
		Nutrition:     models.Nutrition{Calories: 103, Protein: "6.7g", Fat: "6g", Carbs: "6g"},
		IsActive:      true,
	},
	{
		DishID: 4, Name: "家常花菜", NameEn: "Home Style Cauliflower",
		Price: 10.99, Stock: 18, OrderCount: 1, Category: models.CategoryVegetables,
		ImageURL:      "/assets/dishCovers/home_style_cauliflower.png",
		Description:   "清爽可口的花菜，配上蒜蓉和辣椒，简单却美味，健康低卡。",
		DescriptionEn: "Fresh and crispy cauliflower stir-fried with garlic and chili. Simple yet delicious.",
		Ingredients:   []string{"花菜", "蒜", "干辣椒", "生抽", "盐"},
		IngredientsEn: []string{"Cauliflower", "Garlic", "Dried Chili", "Light Soy Sauce", "Salt"},
		Nutrition:     models.Nutrition{Calories: 60, Protein: "2.7g", Fat: "2.7g", Carbs: "7.3g"},
		IsActive:      true,
	},
	{
		DishID: 5, Name: "白灼西兰花", NameEn: "Blanched Broccoli",
		Price: 8.99, Stock: 25, OrderCount: 3, Category: models.CategoryVegetables,
		ImageURL:      "/assets/dishCovers/blanched_broccoli.png",
		Description:   "保持蔬菜原味的健康做法，翠绿的西兰花配上蚝油，清淡营养。",
		DescriptionEn: "Bright green broccoli with oyster sauce, light and nutritious.",
		Ingredients:   []string{"西兰花", "蚝油", "蒜", "盐", "油"},
		IngredientsEn: []string{"Broccoli", "Oyster Sauce", "Garlic", "Salt", "Oil"},
		Nutrition:     models.Nutrition{Calories: 50, Protein: "2g", Fat: "2g", Carbs: "6g"},
		IsActive:      true,
	},
	{
		DishID: 6, Name: "香辣排骨", NameEn: "Spicy Pork Ribs",
		Price: 16.99, Stock: 10, OrderCount: 1, Category: models.CategoryPork,
		ImageURL:      "/assets/dishCovers/spicy_pork_ribs.png",
		Description:   "酥脆外皮，肉质鲜嫩的排骨，配上香辣调味，让人欲罢不能。",
		DescriptionEn: "Crispy on the outside, tender on the inside, seasoned to perfection.",
		Ingredients:   []string{"排骨", "辣椒", "花椒", "姜蒜", "料酒"},
		IngredientsEn: []string{"Pork Ribs", "Chili", "Sichuan Pepper", "Ginger & Garlic", "Cooking Wine"},
		Nutrition:     models.Nutrition{Calories: 140, Protein: "9.3g", Fat: "8.3g", Carbs: "7.3g"},
		IsActive:      true,
	},
	{
		DishID: 7, Name: "小炒鸡肉", NameEn: "Stir Fried Chicken Breast",
		Price: 14.99, Stock: 16, OrderCount: 2, Category: models.CategoryChicken,
		ImageURL:      "/assets/dishCovers/stir_fried_chicken_breast.png",
		Description:   "嫩滑的鸡胸肉配上时蔬，高蛋白低脂肪，健身人士的最爱。",
		DescriptionEn: "Tender chicken stir-fried with seasonal vegetables. High protein, low fat.",
		Ingredients:   []string{"鸡胸肉", "彩椒", "洋葱", "生抽", "黑胡椒"},
		IngredientsEn: []string{"Chicken Breast", "Bell Peppers", "Onion", "Soy Sauce", "Black Pepper"},
		Nutrition:     models.Nutrition{Calories: 87, Protein: "10.7g", Fat: "2.7g", Carbs: "5.3g"},
		IsActive:      true,
	},
	{
		DishID: 8, Name: "炸鸡排", NameEn: "Fried Chicken Cutlet",
		Price: 13.99, Stock: 14, OrderCount: 2, Category: models.CategoryChicken,
		ImageURL:      "/assets/dishCovers/fried_chicken_cutlet.png",
		Description:   "金黄酥脆的外皮，多汁鲜嫩的鸡肉，搭配特制酱料，美味无比。",
		DescriptionEn: "Golden crispy coating with juicy tender chicken inside, served with special sauce.",
		Ingredients:   []string{"鸡腿肉", "面包糠", "鸡蛋", "面粉", "调味料"},
		IngredientsEn: []string{"Chicken Thigh", "Breadcrumbs", "Egg", "Flour", "Seasonings"},
		Nutrition:     models.Nutrition{Calories: 127, Protein: "10g", Fat: "6.7g", Carbs: "8g"},
		IsActive:      true,
	},
}

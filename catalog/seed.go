package catalog

import "github.com/defaulths/E-commerceWeb-GERALDO/models"

// seedProducts is the full farm catalog. Stock counts here are the clamp
// ceiling for cart quantities.
var seedProducts = []models.Product{
	{
		ID:          1,
		Name:        "Organic Carrots",
		Category:    "vegetables",
		Price:       2.99,
		Description: "Freshly harvested, sweet and crunchy organic carrots grown in nutrient-rich soil without any pesticides or chemicals.",
		Details:     "Our organic carrots are grown using sustainable farming methods. They're rich in beta-carotene, fiber, and antioxidants. Perfect for salads, soups, or as a healthy snack.",
		Image:       "🥕",
		Stock:       50,
		Rating:      4.5,
		Reviews:     24,
		Farm:        "Green Valley Organic Farm",
		HarvestDate: "2023-10-15",
		Unit:        "per lb",
	},
	{
		ID:          2,
		Name:        "Honeycrisp Apples",
		Category:    "fruits",
		Price:       3.49,
		Description: "Crisp, juicy apples with the perfect balance of sweetness and tartness, ideal for snacking or baking.",
		Details:     "Honeycrisp apples are known for their exceptional crispness and juiciness. Grown in our orchard with natural pollination methods. These apples maintain their texture when baked.",
		Image:       "🍎",
		Stock:       35,
		Rating:      4.8,
		Reviews:     42,
		Farm:        "Sunny Orchard",
		HarvestDate: "2023-10-10",
		Unit:        "per lb",
	},
	{
		ID:          3,
		Name:        "Farmhouse Cheese",
		Category:    "dairy",
		Price:       6.99,
		Description: "Aged cheddar cheese made from grass-fed cow's milk, with rich flavor and smooth texture.",
		Details:     "Our farmhouse cheese is aged for 6 months to develop its distinctive flavor. Made from the milk of pasture-raised cows. Contains no artificial preservatives or additives.",
		Image:       "🧀",
		Stock:       20,
		Rating:      4.7,
		Reviews:     18,
		Farm:        "Happy Cow Dairy",
		HarvestDate: "2023-09-20",
		Unit:        "per block",
	},
	{
		ID:          4,
		Name:        "Whole Wheat Flour",
		Category:    "grains",
		Price:       4.99,
		Description: "Stone-ground whole wheat flour perfect for baking bread, cookies, and other baked goods.",
		Details:     "Made from locally grown wheat, stone-ground to preserve nutrients and flavor. Contains all parts of the wheat kernel—bran, germ, and endosperm. High in fiber and protein.",
		Image:       "🌾",
		Stock:       40,
		Rating:      4.4,
		Reviews:     31,
		Farm:        "Golden Grain Mill",
		HarvestDate: "2023-10-01",
		Unit:        "per lb",
	},
	{
		ID:          5,
		Name:        "Bell Peppers",
		Category:    "vegetables",
		Price:       3.25,
		Description: "Colorful bell peppers in red, green, and yellow varieties, packed with vitamins and flavor.",
		Details:     "These bell peppers are grown in our greenhouse using organic methods. Rich in vitamins A and C. Available in mixed color packs or individual colors.",
		Image:       "🫑",
		Stock:       30,
		Rating:      4.3,
		Reviews:     19,
		Farm:        "Rainbow Greenhouse",
		HarvestDate: "2023-10-12",
		Unit:        "per lb",
	},
	{
		ID:          6,
		Name:        "Fresh Lemons",
		Category:    "fruits",
		Price:       2.75,
		Description: "Juicy, tart lemons perfect for cooking, baking, and beverages.",
		Details:     "Grown in our coastal lemon grove, these lemons are known for their thin skin and high juice content. Great for lemonade, dressings, and zesting.",
		Image:       "🍋",
		Stock:       60,
		Rating:      4.6,
		Reviews:     27,
		Farm:        "Coastal Citrus Grove",
		HarvestDate: "2023-10-05",
		Unit:        "per lb",
	},
	{
		ID:          7,
		Name:        "Organic Tomatoes",
		Category:    "vegetables",
		Price:       3.99,
		Description: "Vine-ripened organic tomatoes with rich flavor and firm texture.",
		Details:     "Our tomatoes are grown on the vine until fully ripe, ensuring maximum flavor and nutrition. Perfect for salads, sauces, and sandwiches.",
		Image:       "🍅",
		Stock:       25,
		Rating:      4.7,
		Reviews:     38,
		Farm:        "Green Valley Organic Farm",
		HarvestDate: "2023-10-08",
		Unit:        "per lb",
	},
	{
		ID:          8,
		Name:        "Farm Fresh Eggs",
		Category:    "dairy",
		Price:       5.99,
		Description: "Free-range eggs from happy chickens, with rich orange yolks and superior taste.",
		Details:     "Our chickens roam freely on pasture, resulting in eggs with higher nutrient content. Each egg is hand-collected daily and carefully packed.",
		Image:       "🥚",
		Stock:       45,
		Rating:      4.9,
		Reviews:     56,
		Farm:        "Happy Hen Haven",
		HarvestDate: "2023-10-14",
		Unit:        "per dozen",
	},
}

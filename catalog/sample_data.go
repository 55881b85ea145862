package catalog

import "github.com/ARNOB663/Food-Network/models"

// SampleProducts is the embedded fallback dataset: a fixed grocery catalog
// served whenever the primary source is empty or unreachable, and seeded
// into a fresh database at boot.
var SampleProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Fresh Organic Bananas",
		Price:       2.99,
		Image:       "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400",
		Category:    "Fruits",
		Description: "Fresh organic bananas, perfect for smoothies or snacks. Rich in potassium and natural sweetness.",
		Stock:       50,
	},
	{
		ID:          "2",
		Name:        "Organic Avocados",
		Price:       3.99,
		Image:       "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=400",
		Category:    "Fruits",
		Description: "Ripe organic avocados, perfect for guacamole, toast, or salads. Creamy and nutritious.",
		Stock:       35,
	},
	{
		ID:          "3",
		Name:        "Fresh Strawberries",
		Price:       4.49,
		Image:       "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400",
		Category:    "Fruits",
		Description: "Sweet and juicy organic strawberries. Perfect for desserts, smoothies, or fresh eating.",
		Stock:       30,
	},
	{
		ID:          "4",
		Name:        "Organic Apples",
		Price:       3.29,
		Image:       "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400",
		Category:    "Fruits",
		Description: "Crisp organic apples. Great for snacking, baking, or making fresh juice.",
		Stock:       60,
	},
	{
		ID:          "5",
		Name:        "Fresh Oranges",
		Price:       2.79,
		Image:       "https://images.unsplash.com/photo-1547514701-42782101795e?w=400",
		Category:    "Fruits",
		Description: "Juicy fresh oranges packed with vitamin C. Perfect for juicing or fresh eating.",
		Stock:       45,
	},
	{
		ID:          "6",
		Name:        "Organic Blueberries",
		Price:       5.99,
		Image:       "https://images.unsplash.com/photo-1498557850523-fd3d118b962e?w=400",
		Category:    "Fruits",
		Description: "Antioxidant-rich organic blueberries. Great for smoothies, baking, or cereal topping.",
		Stock:       25,
	},
	{
		ID:          "7",
		Name:        "Fresh Spinach",
		Price:       2.49,
		Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400",
		Category:    "Vegetables",
		Description: "Fresh organic spinach leaves, perfect for salads, smoothies, or cooking.",
		Stock:       40,
	},
	{
		ID:          "8",
		Name:        "Organic Carrots",
		Price:       1.99,
		Image:       "https://images.unsplash.com/photo-1447175008436-170170753886?w=400",
		Category:    "Vegetables",
		Description: "Sweet organic carrots. Perfect for snacking, juicing, or cooking.",
		Stock:       55,
	},
	{
		ID:          "9",
		Name:        "Fresh Broccoli",
		Price:       3.29,
		Image:       "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=400",
		Category:    "Vegetables",
		Description: "Fresh organic broccoli florets. Great steamed, roasted, or in stir-fries.",
		Stock:       35,
	},
	{
		ID:          "10",
		Name:        "Organic Tomatoes",
		Price:       2.99,
		Image:       "https://images.unsplash.com/photo-1546094096-0df4bcaaa337?w=400",
		Category:    "Vegetables",
		Description: "Ripe organic tomatoes. Perfect for salads, sandwiches, or cooking.",
		Stock:       40,
	},
	{
		ID:          "11",
		Name:        "Fresh Bell Peppers",
		Price:       3.49,
		Image:       "https://images.unsplash.com/photo-1525607551316-5a9e1c8b3c8c?w=400",
		Category:    "Vegetables",
		Description: "Colorful organic bell peppers. Great for salads, stir-fries, or stuffing.",
		Stock:       30,
	},
	{
		ID:          "12",
		Name:        "Organic Onions",
		Price:       1.79,
		Image:       "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400",
		Category:    "Vegetables",
		Description: "Fresh organic onions. Essential for cooking and flavoring dishes.",
		Stock:       50,
	},
	{
		ID:          "13",
		Name:        "Organic Milk",
		Price:       4.99,
		Image:       "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=400",
		Category:    "Dairy",
		Description: "Fresh organic whole milk from grass-fed cows. Rich and creamy.",
		Stock:       30,
	},
	{
		ID:          "14",
		Name:        "Free Range Eggs",
		Price:       5.99,
		Image:       "https://images.unsplash.com/photo-1582722872445-44dc5f7e3c8f?w=400",
		Category:    "Dairy",
		Description: "Farm fresh free range eggs, 12 count. Perfect for breakfast or baking.",
		Stock:       20,
	},
	{
		ID:          "15",
		Name:        "Organic Greek Yogurt",
		Price:       6.49,
		Image:       "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=400",
		Category:    "Dairy",
		Description: "Creamy organic Greek yogurt. High in protein, perfect for breakfast or snacks.",
		Stock:       25,
	},
	{
		ID:          "16",
		Name:        "Aged Cheddar Cheese",
		Price:       7.99,
		Image:       "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=400",
		Category:    "Dairy",
		Description: "Sharp aged cheddar cheese. Perfect for sandwiches, cooking, or cheese boards.",
		Stock:       15,
	},
	{
		ID:          "17",
		Name:        "Organic Butter",
		Price:       5.49,
		Image:       "https://images.unsplash.com/photo-1558642452-9d2a7deb7f62?w=400",
		Category:    "Dairy",
		Description: "Rich organic butter from grass-fed cows. Perfect for cooking and baking.",
		Stock:       20,
	},
	{
		ID:          "18",
		Name:        "Chicken Breast",
		Price:       8.99,
		Image:       "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=400",
		Category:    "Meat",
		Description: "Fresh boneless chicken breast, 1lb package. Lean and versatile protein.",
		Stock:       15,
	},
	{
		ID:          "19",
		Name:        "Ground Beef",
		Price:       9.99,
		Image:       "https://images.unsplash.com/photo-1603360946369-dc9bb6258143?w=400",
		Category:    "Meat",
		Description: "Premium ground beef, 1lb package. Perfect for burgers, meatballs, or tacos.",
		Stock:       12,
	},
	{
		ID:          "20",
		Name:        "Salmon Fillets",
		Price:       12.99,
		Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400",
		Category:    "Meat",
		Description: "Fresh wild-caught salmon fillets. Rich in omega-3 fatty acids.",
		Stock:       8,
	},
	{
		ID:          "21",
		Name:        "Pork Chops",
		Price:       7.99,
		Image:       "https://images.unsplash.com/photo-1607623814075-e51df1bdc82f?w=400",
		Category:    "Meat",
		Description: "Fresh pork chops, 4-pack. Tender and flavorful.",
		Stock:       10,
	},
	{
		ID:          "22",
		Name:        "Whole Grain Bread",
		Price:       3.49,
		Image:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=400",
		Category:    "Bakery",
		Description: "Freshly baked whole grain bread with no preservatives. Nutritious and delicious.",
		Stock:       25,
	},
	{
		ID:          "23",
		Name:        "Croissants",
		Price:       4.99,
		Image:       "https://images.unsplash.com/photo-1555507036-ab794f4ade2a?w=400",
		Category:    "Bakery",
		Description: "Buttery flaky croissants. Perfect for breakfast or brunch.",
		Stock:       20,
	},
	{
		ID:          "24",
		Name:        "Chocolate Chip Cookies",
		Price:       2.99,
		Image:       "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400",
		Category:    "Bakery",
		Description: "Fresh baked chocolate chip cookies. Soft and chewy with real chocolate chips.",
		Stock:       30,
	},
	{
		ID:          "25",
		Name:        "Sourdough Bread",
		Price:       4.49,
		Image:       "https://images.unsplash.com/photo-1585478259715-876acc5be8eb?w=400",
		Category:    "Bakery",
		Description: "Artisan sourdough bread. Tangy flavor with a crispy crust.",
		Stock:       15,
	},
	{
		ID:          "26",
		Name:        "Brown Rice",
		Price:       4.49,
		Image:       "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
		Category:    "Grains",
		Description: "Organic brown rice, 2lb bag. Nutritious whole grain option.",
		Stock:       45,
	},
	{
		ID:          "27",
		Name:        "Quinoa",
		Price:       6.99,
		Image:       "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
		Category:    "Grains",
		Description: "Organic quinoa, 1lb package. High-protein ancient grain.",
		Stock:       25,
	},
	{
		ID:          "28",
		Name:        "Oatmeal",
		Price:       3.99,
		Image:       "https://images.unsplash.com/photo-1517686469429-8bdb88b9f907?w=400",
		Category:    "Grains",
		Description: "Steel-cut organic oatmeal. Perfect for a healthy breakfast.",
		Stock:       35,
	},
	{
		ID:          "29",
		Name:        "Whole Wheat Pasta",
		Price:       2.99,
		Image:       "https://images.unsplash.com/photo-1551892374-ecf8754cf8b0?w=400",
		Category:    "Grains",
		Description: "Organic whole wheat pasta. Nutritious alternative to regular pasta.",
		Stock:       40,
	},
	{
		ID:          "30",
		Name:        "Organic Orange Juice",
		Price:       4.99,
		Image:       "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=400",
		Category:    "Beverages",
		Description: "Fresh squeezed organic orange juice. No added sugars or preservatives.",
		Stock:       20,
	},
	{
		ID:          "31",
		Name:        "Green Tea",
		Price:       3.49,
		Image:       "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=400",
		Category:    "Beverages",
		Description: "Premium organic green tea. Antioxidant-rich and refreshing.",
		Stock:       30,
	},
	{
		ID:          "32",
		Name:        "Coconut Water",
		Price:       3.99,
		Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400",
		Category:    "Beverages",
		Description: "Natural coconut water. Hydrating and electrolyte-rich.",
		Stock:       25,
	},
	{
		ID:          "33",
		Name:        "Mixed Nuts",
		Price:       8.99,
		Image:       "https://images.unsplash.com/photo-1599599810769-bcde5a160d32?w=400",
		Category:    "Snacks",
		Description: "Premium mixed nuts. Almonds, cashews, walnuts, and pecans.",
		Stock:       20,
	},
	{
		ID:          "34",
		Name:        "Organic Popcorn",
		Price:       2.99,
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
		Category:    "Snacks",
		Description: "Light and fluffy organic popcorn. Perfect healthy snack.",
		Stock:       35,
	},
	{
		ID:          "35",
		Name:        "Dark Chocolate",
		Price:       4.49,
		Image:       "https://images.unsplash.com/photo-1481391319762-47dff72954d9?w=400",
		Category:    "Snacks",
		Description: "70% dark chocolate bar. Rich and indulgent with health benefits.",
		Stock:       30,
	},
	{
		ID:          "36",
		Name:        "Frozen Berries",
		Price:       5.99,
		Image:       "https://images.unsplash.com/photo-1498557850523-fd3d118b962e?w=400",
		Category:    "Frozen Foods",
		Description: "Mixed frozen berries. Perfect for smoothies, baking, or desserts.",
		Stock:       25,
	},
	{
		ID:          "37",
		Name:        "Frozen Pizza",
		Price:       7.99,
		Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400",
		Category:    "Frozen Foods",
		Description: "Margherita frozen pizza. Quick and delicious meal option.",
		Stock:       15,
	},
	{
		ID:          "38",
		Name:        "Ice Cream",
		Price:       6.49,
		Image:       "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=400",
		Category:    "Frozen Foods",
		Description: "Vanilla bean ice cream. Creamy and indulgent dessert.",
		Stock:       20,
	},
	{
		ID:          "39",
		Name:        "Extra Virgin Olive Oil",
		Price:       9.99,
		Image:       "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=400",
		Category:    "Pantry",
		Description: "Premium extra virgin olive oil. Perfect for cooking and dressings.",
		Stock:       30,
	},
	{
		ID:          "40",
		Name:        "Organic Honey",
		Price:       7.99,
		Image:       "https://images.unsplash.com/photo-1587049352846-4a222e784d38?w=400",
		Category:    "Pantry",
		Description: "Pure organic honey. Natural sweetener with health benefits.",
		Stock:       25,
	},
	{
		ID:          "41",
		Name:        "Sea Salt",
		Price:       3.99,
		Image:       "https://images.unsplash.com/photo-1588514727390-91fd5ebaef81?w=400",
		Category:    "Pantry",
		Description: "Fine sea salt. Essential seasoning for all your cooking needs.",
		Stock:       40,
	},
	{
		ID:          "42",
		Name:        "Organic Black Pepper",
		Price:       4.49,
		Image:       "https://images.unsplash.com/photo-1588514727390-91fd5ebaef81?w=400",
		Category:    "Pantry",
		Description: "Freshly ground organic black pepper. Adds flavor to any dish.",
		Stock:       35,
	},
}

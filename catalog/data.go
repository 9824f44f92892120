package catalog

import "otto/models"

// Static demo catalog. Prices are CLP.
var products = []models.Product{
	// --- Living room ---
	{
		ID:           "home-001",
		Name:         "Kioto 3-Seat Sofa",
		Description:  "Low-profile fabric sofa with oak legs and washable covers",
		Price:        549990,
		Currency:     "CLP",
		Store:        "Falabella",
		StoreURL:     "https://www.falabella.com/p/home-001",
		ImageURL:     "https://images.otto.demo/home-001.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"sofa", "japandi", "fabric", "oak"},
		DeliveryDays: 7,
	},
	{
		ID:           "home-002",
		Name:         "Nakano Coffee Table",
		Description:  "Solid pine coffee table with a natural matte finish",
		Price:        129990,
		Currency:     "CLP",
		Store:        "Sodimac",
		StoreURL:     "https://www.sodimac.cl/p/home-002",
		ImageURL:     "https://images.otto.demo/home-002.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"table", "wood", "minimalist"},
		DeliveryDays: 5,
	},
	{
		ID:           "home-003",
		Name:         "Hoshi Floor Lamp",
		Description:  "Paper shade floor lamp, warm diffuse light",
		Price:        59990,
		Currency:     "CLP",
		Store:        "Paris",
		StoreURL:     "https://www.paris.cl/p/home-003",
		ImageURL:     "https://images.otto.demo/home-003.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"lamp", "lighting", "paper", "zen"},
		DeliveryDays: 3,
	},
	{
		ID:           "home-004",
		Name:         "Tatami Area Rug 200x290",
		Description:  "Flat-woven jute rug in natural beige",
		Price:        89990,
		Currency:     "CLP",
		Store:        "Falabella",
		StoreURL:     "https://www.falabella.com/p/home-004",
		ImageURL:     "https://images.otto.demo/home-004.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"rug", "jute", "natural"},
		DeliveryDays: 7,
	},

	// --- Casual outfit ---
	{
		ID:           "fash-001",
		Name:         "Essential Cotton Tee",
		Description:  "Heavyweight organic cotton t-shirt, relaxed fit",
		Price:        12990,
		Currency:     "CLP",
		Store:        "Paris",
		StoreURL:     "https://www.paris.cl/p/fash-001",
		ImageURL:     "https://images.otto.demo/fash-001.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"tee", "cotton", "casual"},
		DeliveryDays: 2,
	},
	{
		ID:           "fash-002",
		Name:         "Straight-Leg Denim",
		Description:  "Mid-rise straight jeans in rinsed indigo",
		Price:        34990,
		Currency:     "CLP",
		Store:        "Falabella",
		StoreURL:     "https://www.falabella.com/p/fash-002",
		ImageURL:     "https://images.otto.demo/fash-002.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"denim", "jeans", "casual"},
		DeliveryDays: 4,
	},
	{
		ID:           "fash-003",
		Name:         "Court Low Sneakers",
		Description:  "White leather sneakers with gum sole",
		Price:        69990,
		Currency:     "CLP",
		Store:        "Ripley",
		StoreURL:     "https://www.ripley.cl/p/fash-003",
		ImageURL:     "https://images.otto.demo/fash-003.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"sneakers", "leather", "weekend"},
		DeliveryDays: 3,
	},
	{
		ID:           "fash-004",
		Name:         "Overshirt Jacket",
		Description:  "Brushed twill overshirt in olive",
		Price:        49990,
		Currency:     "CLP",
		Store:        "Paris",
		StoreURL:     "https://www.paris.cl/p/fash-004",
		ImageURL:     "https://images.otto.demo/fash-004.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"jacket", "layer", "casual"},
		DeliveryDays: 2,
	},

	// --- Office style ---
	{
		ID:           "fash-005",
		Name:         "Unstructured Blazer",
		Description:  "Single-breasted wool-blend blazer in charcoal",
		Price:        89990,
		Currency:     "CLP",
		Store:        "Falabella",
		StoreURL:     "https://www.falabella.com/p/fash-005",
		ImageURL:     "https://images.otto.demo/fash-005.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"blazer", "formal", "office"},
		DeliveryDays: 5,
	},
	{
		ID:           "fash-006",
		Name:         "Oxford Dress Shirt",
		Description:  "Non-iron oxford shirt in white",
		Price:        29990,
		Currency:     "CLP",
		Store:        "Ripley",
		StoreURL:     "https://www.ripley.cl/p/fash-006",
		ImageURL:     "https://images.otto.demo/fash-006.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"shirt", "oxford", "office"},
		DeliveryDays: 3,
	},
	{
		ID:           "fash-007",
		Name:         "Tapered Trousers",
		Description:  "Stretch chino trousers in navy",
		Price:        44990,
		Currency:     "CLP",
		Store:        "Paris",
		StoreURL:     "https://www.paris.cl/p/fash-007",
		ImageURL:     "https://images.otto.demo/fash-007.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"trousers", "chino", "formal"},
		DeliveryDays: 4,
	},
	{
		ID:           "fash-008",
		Name:         "Derby Leather Shoes",
		Description:  "Full-grain leather derby shoes in dark brown",
		Price:        99990,
		Currency:     "CLP",
		Store:        "Falabella",
		StoreURL:     "https://www.falabella.com/p/fash-008",
		ImageURL:     "https://images.otto.demo/fash-008.jpg",
		Category:     models.CategoryFashion,
		Tags:         []string{"shoes", "leather", "formal"},
		DeliveryDays: 6,
	},

	// --- Home improvement ---
	{
		ID:           "home-005",
		Name:         "20V Cordless Drill",
		Description:  "Compact drill driver with two batteries and charger",
		Price:        119990,
		Currency:     "CLP",
		Store:        "Sodimac",
		StoreURL:     "https://www.sodimac.cl/p/home-005",
		ImageURL:     "https://images.otto.demo/home-005.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"drill", "tool", "diy"},
		DeliveryDays: 2,
	},
	{
		ID:           "home-006",
		Name:         "108-Piece Tool Set",
		Description:  "Chrome vanadium tool set with hard case",
		Price:        79990,
		Currency:     "CLP",
		Store:        "Easy",
		StoreURL:     "https://www.easy.cl/p/home-006",
		ImageURL:     "https://images.otto.demo/home-006.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"tools", "set", "diy"},
		DeliveryDays: 3,
	},
	{
		ID:           "home-007",
		Name:         "Interior Wall Paint 1gal",
		Description:  "Low-odor washable latex paint, warm white",
		Price:        34990,
		Currency:     "CLP",
		Store:        "Sodimac",
		StoreURL:     "https://www.sodimac.cl/p/home-007",
		ImageURL:     "https://images.otto.demo/home-007.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"paint", "wall", "diy"},
		DeliveryDays: 2,
	},
	{
		ID:           "home-008",
		Name:         "DIY Safety Kit",
		Description:  "Safety glasses, gloves and dust masks",
		Price:        19990,
		Currency:     "CLP",
		Store:        "Easy",
		StoreURL:     "https://www.easy.cl/p/home-008",
		ImageURL:     "https://images.otto.demo/home-008.jpg",
		Category:     models.CategoryHome,
		Tags:         []string{"safety", "gloves", "diy"},
		DeliveryDays: 1,
	},
}

var templates = map[TemplateKey]SolutionTemplate{
	LivingRoom: {
		Key:         LivingRoom,
		Title:       "Project: Living Room Refresh",
		Description: "A warm Japandi living room built around natural materials",
		ProductIDs:  []string{"home-001", "home-002", "home-003", "home-004"},
		Roles:       []string{"Main Sofa", "Coffee Table", "Accent Lamp", "Area Rug"},
	},
	CasualOutfit: {
		Key:         CasualOutfit,
		Title:       "Project: Weekend Casual Look",
		Description: "An easy weekend outfit that works from brunch to errands",
		ProductIDs:  []string{"fash-001", "fash-002", "fash-003", "fash-004"},
		Roles:       []string{"Core Tee", "Denim", "Sneakers", "Layer Jacket"},
	},
	OfficeStyle: {
		Key:         OfficeStyle,
		Title:       "Project: Office Ready",
		Description: "A sharp, comfortable look for meetings and long days",
		ProductIDs:  []string{"fash-005", "fash-006", "fash-007", "fash-008"},
		Roles:       []string{"Blazer", "Shirt", "Trousers", "Leather Shoes"},
	},
	HomeImprovement: {
		Key:         HomeImprovement,
		Title:       "Project: Weekend DIY Kit",
		Description: "Everything needed for a weekend of repairs and painting",
		ProductIDs:  []string{"home-005", "home-006", "home-007", "home-008"},
		Roles:       []string{"Cordless Drill", "Tool Set", "Wall Paint", "Safety Kit"},
	},
}

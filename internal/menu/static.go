package menu

// Option groups shared across several ramen bowls.
var (
	sizeGroup = OptionGroup{
		ID:        "size",
		Name:      "Choose Your Size",
		Mode:      Single,
		Required:  true,
		MinSelect: 1,
		MaxSelect: 1,
		Options: []Option{
			{ID: "small", Label: "Small", PriceDelta: 0},
			{ID: "regular", Label: "Regular", PriceDelta: 2},
			{ID: "large", Label: "Large", PriceDelta: 4},
		},
	}

	ramenToppings = OptionGroup{
		ID:            "toppings",
		Name:          "Add Extra Toppings",
		Mode:          Multiple,
		Required:      false,
		MinSelect:     0,
		MaxSelect:     6,
		AllowQuantity: true,
		Options: []Option{
			{ID: "extra-egg", Label: "Extra Soft-Boiled Egg", PriceDelta: 2, MaxQuantity: 3},
			{ID: "extra-chashu", Label: "Extra Chashu Pork", PriceDelta: 3, MaxQuantity: 3},
			{ID: "corn", Label: "Sweet Corn", PriceDelta: 1, MaxQuantity: 2},
			{ID: "nori", Label: "Extra Nori (3pcs)", PriceDelta: 1, MaxQuantity: 3},
			{ID: "bamboo", Label: "Menma Bamboo Shoots", PriceDelta: 1.5, MaxQuantity: 2},
			{ID: "butter", Label: "Hokkaido Butter", PriceDelta: 1, MaxQuantity: 2},
		},
	}

	spiceLevel = OptionGroup{
		ID:        "spice",
		Name:      "Spice Level",
		Mode:      Single,
		Required:  true,
		MinSelect: 1,
		MaxSelect: 1,
		Options: []Option{
			{ID: "mild", Label: "Mild", PriceDelta: 0},
			{ID: "medium", Label: "Medium", PriceDelta: 0},
			{ID: "hot", Label: "Hot", PriceDelta: 0},
			{ID: "extra-hot", Label: "Extra Hot", PriceDelta: 0},
		},
	}

	noodleTexture = OptionGroup{
		ID:        "noodle-texture",
		Name:      "Noodle Texture",
		Mode:      Single,
		Required:  false,
		MinSelect: 0,
		MaxSelect: 1,
		Options: []Option{
			{ID: "soft", Label: "Soft (Yawa)", PriceDelta: 0},
			{ID: "regular-noodle", Label: "Regular (Futsu)", PriceDelta: 0},
			{ID: "firm", Label: "Firm (Kata)", PriceDelta: 0},
			{ID: "extra-firm", Label: "Extra Firm (Barikata)", PriceDelta: 0},
		},
	}

	dippingSauce = OptionGroup{
		ID:        "sauce",
		Name:      "Dipping Sauce",
		Mode:      Single,
		Required:  false,
		MinSelect: 0,
		MaxSelect: 1,
		Options: []Option{
			{ID: "ponzu", Label: "Citrus Ponzu", PriceDelta: 0},
			{ID: "gyoza-sauce", Label: "House Gyoza Sauce", PriceDelta: 0},
			{ID: "spicy-mayo", Label: "Spicy Mayo", PriceDelta: 0.5},
		},
	}
)

// StaticData is the bundled catalog, served whenever the remote source is
// disabled or unreachable.
var StaticData = Data{
	Categories: []Category{
		{ID: "starters", Name: "Starters", Description: "Begin your journey"},
		{ID: "ramen", Name: "Ramen", Description: "Our signature bowls"},
		{ID: "drinks", Name: "Drinks", Description: "Refresh & unwind"},
		{ID: "desserts", Name: "Desserts", Description: "Sweet endings"},
	},
	Items: []Item{
		// Starters
		{
			ID:          "gyoza",
			Name:        "Pork Gyoza",
			Description: "Pan-fried dumplings with juicy pork and vegetable filling, served with house ponzu",
			Image:       "/assets/gyoza.jpg",
			BasePrice:   8,
			CategoryID:  "starters",
			OptionGroups: []OptionGroup{
				{
					ID:        "gyoza-quantity",
					Name:      "Quantity",
					Mode:      Single,
					Required:  true,
					MinSelect: 1,
					MaxSelect: 1,
					Options: []Option{
						{ID: "5pc", Label: "5 Pieces", PriceDelta: 0},
						{ID: "8pc", Label: "8 Pieces", PriceDelta: 4},
						{ID: "12pc", Label: "12 Pieces", PriceDelta: 8},
					},
				},
				dippingSauce,
			},
		},
		{
			ID:            "edamame",
			Name:          "Edamame",
			Description:   "Steamed young soybeans with Okinawan sea salt",
			Image:         "/assets/edamame.jpg",
			BasePrice:     5,
			CategoryID:    "starters",
			DietaryBadges: []DietaryBadge{Vegetarian, Vegan, GlutenFree},
			OptionGroups: []OptionGroup{
				{
					ID:        "edamame-style",
					Name:      "Style",
					Mode:      Single,
					Required:  false,
					MinSelect: 0,
					MaxSelect: 1,
					Options: []Option{
						{ID: "plain", Label: "Classic Sea Salt", PriceDelta: 0},
						{ID: "garlic", Label: "Garlic Butter", PriceDelta: 1},
						{ID: "spicy", Label: "Spicy Chili Garlic", PriceDelta: 1},
					},
				},
			},
		},
		{
			ID:          "karaage",
			Name:        "Chicken Karaage",
			Description: "Crispy Japanese fried chicken thighs with kewpie mayo and lemon",
			Image:       "/assets/karaage.jpg",
			BasePrice:   10,
			CategoryID:  "starters",
			OptionGroups: []OptionGroup{
				{
					ID:        "karaage-size",
					Name:      "Portion Size",
					Mode:      Single,
					Required:  true,
					MinSelect: 1,
					MaxSelect: 1,
					Options: []Option{
						{ID: "small-portion", Label: "Small (4 pcs)", PriceDelta: 0},
						{ID: "regular-portion", Label: "Regular (6 pcs)", PriceDelta: 3},
						{ID: "large-portion", Label: "Large (8 pcs)", PriceDelta: 6},
					},
				},
			},
		},
		{
			ID:          "takoyaki",
			Name:        "Takoyaki",
			Description: "Crispy octopus balls with bonito flakes, takoyaki sauce, and kewpie mayo",
			Image:       "/assets/takoyaki.jpg",
			BasePrice:   9,
			CategoryID:  "starters",
		},
		{
			ID:            "tempura",
			Name:          "Vegetable Tempura",
			Description:   "Seasonal vegetables in light, crispy batter with tentsuyu dipping sauce",
			Image:         "/assets/tempura.jpg",
			BasePrice:     11,
			CategoryID:    "starters",
			DietaryBadges: []DietaryBadge{Vegetarian},
		},
		// Ramen
		{
			ID:           "tonkotsu",
			Name:         "Hakata Tonkotsu",
			Description:  "Rich, creamy 18-hour pork bone broth with chashu, soft egg, nori, and scallions",
			Image:        "/assets/tonkotsu-ramen.jpg",
			BasePrice:    16,
			CategoryID:   "ramen",
			OptionGroups: []OptionGroup{sizeGroup, ramenToppings, noodleTexture},
		},
		{
			ID:           "shoyu",
			Name:         "Tokyo Shoyu",
			Description:  "Clear soy-based broth with chicken and dashi, topped with chashu and menma",
			Image:        "/assets/shoyu-ramen.jpg",
			BasePrice:    15,
			CategoryID:   "ramen",
			OptionGroups: []OptionGroup{sizeGroup, ramenToppings, noodleTexture},
		},
		{
			ID:           "miso",
			Name:         "Sapporo Miso",
			Description:  "Hearty miso broth with ground pork, corn, butter, and bean sprouts",
			Image:        "/assets/miso-ramen.jpg",
			BasePrice:    16,
			CategoryID:   "ramen",
			OptionGroups: []OptionGroup{sizeGroup, ramenToppings, noodleTexture},
		},
		{
			ID:            "tantanmen",
			Name:          "Spicy Tantanmen",
			Description:   "Sesame chili broth with ground pork, bok choy, and a perfect soft egg",
			Image:         "/assets/tantanmen.jpg",
			BasePrice:     17,
			CategoryID:    "ramen",
			DietaryBadges: []DietaryBadge{Spicy},
			OptionGroups:  []OptionGroup{sizeGroup, spiceLevel, ramenToppings, noodleTexture},
		},
		{
			ID:            "veggie-ramen",
			Name:          "Garden Miso",
			Description:   "Vegetable miso broth with tofu, seasonal vegetables, and mushrooms",
			Image:         "/assets/miso-ramen.jpg",
			BasePrice:     14,
			CategoryID:    "ramen",
			DietaryBadges: []DietaryBadge{Vegetarian, Vegan},
			OptionGroups: []OptionGroup{
				sizeGroup,
				{
					ID:        "veggie-protein",
					Name:      "Add Protein",
					Mode:      Multiple,
					Required:  false,
					MinSelect: 0,
					MaxSelect: 2,
					Options: []Option{
						{ID: "extra-tofu", Label: "Extra Firm Tofu", PriceDelta: 2},
						{ID: "tempeh", Label: "Marinated Tempeh", PriceDelta: 2.5},
					},
				},
				noodleTexture,
			},
		},
		// Drinks
		{
			ID:            "matcha",
			Name:          "Ceremonial Matcha",
			Description:   "Stone-ground Uji matcha, whisked to perfection",
			Image:         "/assets/matcha.jpg",
			BasePrice:     5,
			CategoryID:    "drinks",
			DietaryBadges: []DietaryBadge{Vegetarian, Vegan, GlutenFree},
			OptionGroups: []OptionGroup{
				{
					ID:        "matcha-style",
					Name:      "Style",
					Mode:      Single,
					Required:  true,
					MinSelect: 1,
					MaxSelect: 1,
					Options: []Option{
						{ID: "hot", Label: "Hot", PriceDelta: 0},
						{ID: "iced", Label: "Iced", PriceDelta: 0},
						{ID: "latte", Label: "Latte", PriceDelta: 1},
					},
				},
			},
		},
		{
			ID:            "beer",
			Name:          "Asahi Super Dry",
			Description:   "Crisp Japanese lager, perfectly poured",
			Image:         "/assets/beer.jpg",
			BasePrice:     7,
			CategoryID:    "drinks",
			DietaryBadges: []DietaryBadge{Vegetarian, Vegan},
			OptionGroups: []OptionGroup{
				{
					ID:        "beer-size",
					Name:      "Size",
					Mode:      Single,
					Required:  true,
					MinSelect: 1,
					MaxSelect: 1,
					Options: []Option{
						{ID: "small-beer", Label: "Small (330ml)", PriceDelta: 0},
						{ID: "large-beer", Label: "Large (500ml)", PriceDelta: 3},
					},
				},
			},
		},
		{
			ID:            "sake",
			Name:          "House Sake",
			Description:   "Smooth junmai sake, served warm or cold",
			Image:         "/assets/sake.jpg",
			BasePrice:     9,
			CategoryID:    "drinks",
			DietaryBadges: []DietaryBadge{Vegetarian, Vegan, GlutenFree},
			OptionGroups: []OptionGroup{
				{
					ID:        "sake-temp",
					Name:      "Temperature",
					Mode:      Single,
					Required:  true,
					MinSelect: 1,
					MaxSelect: 1,
					Options: []Option{
						{ID: "cold", Label: "Cold (Reishu)", PriceDelta: 0},
						{ID: "warm", Label: "Warm (Nurukan)", PriceDelta: 0},
						{ID: "hot", Label: "Hot (Atsukan)", PriceDelta: 0},
					},
				},
				{
					ID:        "sake-size",
					Name:      "Size",
					Mode:      Single,
					Required:  true,
					MinSelect: 1,
					MaxSelect: 1,
					Options: []Option{
						{ID: "glass", Label: "Glass (180ml)", PriceDelta: 0},
						{ID: "carafe", Label: "Carafe (300ml)", PriceDelta: 6},
					},
				},
			},
		},
		{
			ID:            "ramune",
			Name:          "Ramune Soda",
			Description:   "Classic Japanese marble soda in original flavor",
			Image:         "/assets/matcha.jpg",
			BasePrice:     4,
			CategoryID:    "drinks",
			DietaryBadges: []DietaryBadge{Vegetarian, Vegan},
		},
		// Desserts
		{
			ID:            "mochi",
			Name:          "Mochi Ice Cream",
			Description:   "Chewy rice cake filled with creamy ice cream",
			Image:         "/assets/mochi.jpg",
			BasePrice:     6,
			CategoryID:    "desserts",
			DietaryBadges: []DietaryBadge{Vegetarian, GlutenFree},
			OptionGroups: []OptionGroup{
				{
					ID:        "mochi-flavor",
					Name:      "Choose Flavors (pick 3)",
					Mode:      Multiple,
					Required:  true,
					MinSelect: 3,
					MaxSelect: 3,
					Options: []Option{
						{ID: "matcha-mochi", Label: "Matcha", PriceDelta: 0},
						{ID: "strawberry", Label: "Strawberry", PriceDelta: 0},
						{ID: "mango", Label: "Mango", PriceDelta: 0},
						{ID: "vanilla", Label: "Vanilla", PriceDelta: 0},
						{ID: "black-sesame-mochi", Label: "Black Sesame", PriceDelta: 0},
					},
				},
			},
		},
		{
			ID:            "dorayaki",
			Name:          "Dorayaki",
			Description:   "Fluffy honey pancakes filled with sweet red bean paste",
			Image:         "/assets/dorayaki.jpg",
			BasePrice:     5,
			CategoryID:    "desserts",
			DietaryBadges: []DietaryBadge{Vegetarian},
			OptionGroups: []OptionGroup{
				{
					ID:        "dorayaki-topping",
					Name:      "Add Topping",
					Mode:      Single,
					Required:  false,
					MinSelect: 0,
					MaxSelect: 1,
					Options: []Option{
						{ID: "vanilla-ice", Label: "Vanilla Ice Cream", PriceDelta: 2},
						{ID: "matcha-ice", Label: "Matcha Ice Cream", PriceDelta: 2},
						{ID: "cream", Label: "Fresh Cream", PriceDelta: 1},
					},
				},
			},
		},
		{
			ID:            "sesame-ice-cream",
			Name:          "Black Sesame Ice Cream",
			Description:   "Rich, nutty black sesame ice cream with matcha cookie",
			Image:         "/assets/sesame-ice-cream.jpg",
			BasePrice:     7,
			CategoryID:    "desserts",
			DietaryBadges: []DietaryBadge{Vegetarian, GlutenFree},
		},
		{
			ID:            "matcha-cheesecake",
			Name:          "Matcha Cheesecake",
			Description:   "Light, fluffy Japanese-style cheesecake with matcha swirl",
			Image:         "/assets/mochi.jpg",
			BasePrice:     8,
			CategoryID:    "desserts",
			DietaryBadges: []DietaryBadge{Vegetarian},
		},
	},
}

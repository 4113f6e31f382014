package services

import "strings"

type MenuRecommendation struct {
	Dish        string `json:"dish"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type menuEntry struct {
	dish        string
	keywords    []string
	description string
	price       string
}

// menuTable is a slice, not a map: ties break on first-defined order.
var menuTable = []menuEntry{
	{
		dish:        "Crispy Fish Burger",
		keywords:    []string{"spicy", "crispy", "crunchy", "fried", "hot", "classic"},
		description: "Our signature Crispy Fish Burger with chipotle sauce is perfect for you! Crispy white fish with a spicy kick, creamy coleslaw, and tangy pickles.",
		price:       "95 DH",
	},
	{
		dish:        "Po Boy Sandwich",
		keywords:    []string{"big", "hungry", "large", "filling", "sandwich", "american"},
		description: "Try our Po Boy Sandwich - it's huge! A 12-inch Moroccan baguette stuffed with big fried white fish and tartar sauce. Perfect when you're super hungry!",
		price:       "70 DH",
	},
	{
		dish:        "Msemmen Fish Tacos",
		keywords:    []string{"fusion", "unique", "different", "moroccan", "tacos", "flatbread", "local"},
		description: "Go for our Msemmen Fish Tacos! A unique fusion of Moroccan flatbread and fresh fish. It's our most creative dish!",
		price:       "45 DH",
	},
	{
		dish:        "Fish Burger (Grilled)",
		keywords:    []string{"healthy", "light", "grilled", "fresh", "lean", "diet"},
		description: "The Grilled Fish Burger is your best bet! Healthy grilled white fish with cheese, fresh veggies, and tartar sauce. Light but satisfying!",
		price:       "90 DH",
	},
	{
		dish:        "Octopus Burger",
		keywords:    []string{"unique", "special", "different", "octopus", "seafood", "exotic", "adventurous"},
		description: "Be adventurous with our Octopus Burger! Crispy chopped octopus legs with salsa verde. Unique and absolutely delicious!",
		price:       "110 DH",
	},
	{
		dish:        "Calamari Burger",
		keywords:    []string{"crispy", "rings", "calamari", "squid", "crunchy", "fried"},
		description: "You'll love our Calamari Burger! Crispy calamari rings with lettuce, pickles, and tartar sauce. Crunchy perfection!",
		price:       "110 DH",
	},
	{
		dish:        "Sardine Burger",
		keywords:    []string{"local", "traditional", "moroccan", "sardine", "authentic", "strong"},
		description: "Try our Sardine Burger - a local favorite! Double sardine patties with caramelized onions. Authentic Essaouira flavor!",
		price:       "90 DH",
	},
	{
		dish:        "Eggplant Burger",
		keywords:    []string{"vegetarian", "veg", "veggie", "plant", "no meat", "eggplant"},
		description: "Our Eggplant Burger is perfect for you! Crispy homemade eggplant patty with cheese and coleslaw. Vegetarian and delicious!",
		price:       "90 DH",
	},
}

var defaultRecommendation = MenuRecommendation{
	Dish:        "Crispy Fish Burger",
	Description: "Can't go wrong with our signature Crispy Fish Burger! It's our most popular dish with crispy white fish, spicy chipotle sauce, and fresh toppings.",
	Price:       "95 DH",
}

type ChefService struct{}

func NewChefService() *ChefService {
	return &ChefService{}
}

// Recommend scores each menu entry by the number of its keywords found in
// the craving text and returns the best match, or the house default when
// nothing scores.
func (s *ChefService) Recommend(craving string) MenuRecommendation {
	craving = strings.ToLower(craving)

	var best *menuEntry
	maxScore := 0
	for i := range menuTable {
		score := 0
		for _, kw := range menuTable[i].keywords {
			if strings.Contains(craving, kw) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = &menuTable[i]
		}
	}

	if best == nil {
		return defaultRecommendation
	}
	return MenuRecommendation{
		Dish:        best.dish,
		Description: best.description,
		Price:       best.price,
	}
}

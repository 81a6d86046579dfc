package category

// Category is one top-level entry of the two-level taxonomy. Color, glow and
// icon are display metadata carried for the frontend; only Key, Name and
// Subcategories are load-bearing.
type Category struct {
	Key           string
	Name          string
	Color         string
	SolidColor    string
	GlowColor     string
	Icon          string
	Subcategories []string
}

// Selection is the name/key pair used as the "currently selected" context when
// composing a new transaction.
type Selection struct {
	Name string
	Key  string
}

// Fallback returns the display identity used for a category key that does not
// resolve. Unknown keys are never an error; transactions may reference
// categories that were renamed or never existed.
func Fallback(key string) Category {
	return Category{
		Key:  key,
		Name: "Uncategorized",
		Icon: "📦",
	}
}

// DefaultCategories returns the built-in taxonomy the wallet starts with.
func DefaultCategories() []Category {
	return []Category{
		{
			Key:           "income",
			Name:          "Income",
			Color:         "from-[#00F5FF] via-[#00D4FF] to-[#00B8FF]",
			SolidColor:    "#00F5FF",
			GlowColor:     "rgba(0, 245, 255, 0.6)",
			Icon:          "💰",
			Subcategories: []string{"Income"},
		},
		{
			Key:           "housing",
			Name:          "Housing",
			Color:         "from-[#FF6B9D] via-[#FE5196] to-[#FF3D8F]",
			SolidColor:    "#FF6B9D",
			GlowColor:     "rgba(255, 107, 157, 0.6)",
			Icon:          "🏠",
			Subcategories: []string{"Rent", "Telephone", "Insurance", "Electricity", "Gym", "Internet", "Subscription"},
		},
		{
			Key:           "food",
			Name:          "Food",
			Color:         "from-[#A855F7] via-[#9333EA] to-[#7E22CE]",
			SolidColor:    "#A855F7",
			GlowColor:     "rgba(168, 85, 247, 0.6)",
			Icon:          "🍽️",
			Subcategories: []string{"Groceries", "Restaurant"},
		},
		{
			Key:           "savings",
			Name:          "Savings",
			Color:         "from-[#10F4B1] via-[#00E396] to-[#00D084]",
			SolidColor:    "#10F4B1",
			GlowColor:     "rgba(16, 244, 177, 0.6)",
			Icon:          "🐷",
			Subcategories: []string{"Emergency funds", "Vacation fund"},
		},
	}
}

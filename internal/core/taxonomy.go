package core

// Category pairs a top-level expense category with its permitted
// subcategories, in display order.
type Category struct {
	Name          string
	Subcategories []string
}

// ExpenseCategories is the fixed expense taxonomy. Entry forms constrain
// category/subcategory pairs against this list; the storage layer does not
// enforce it.
var ExpenseCategories = []Category{
	{Name: "Housing", Subcategories: []string{
		"Mortgage", "Special Assessment", "Additional Principal", "Lima Apartment Wires",
		"Lima Apartment Fees", "Escrow", "HOA", "Reserves", "Condo Insurance",
		"Property Taxes", "Labor",
	}},
	{Name: "Utilities", Subcategories: []string{
		"Optimum", "PSEG", "Cell Phone", "Car Insurance", "Gloria", "Insurance",
		"Taxi / Transit", "Bus Pass", "Misc Utility",
	}},
	{Name: "Food", Subcategories: []string{
		"Food (Groceries)", "Food (Take Out)", "Food (Dining Out)", "Food (Other)",
		"Food (Party)", "Food (Guests)", "Food (Work)", "Food (Special Occasion)",
	}},
	{Name: "Healthcare", Subcategories: []string{
		"Jeff Doctor", "Prescriptions", "Vitamins", "Other Doctor Visits",
		"Haircut", "Hygenie", "Family", "Fertility", "Co-Pay", "Baker",
		"HC Subscriptions", "Joaquin Health Care", "Zoe Health Care", "Misc Health Care",
	}},
	{Name: "Childcare", Subcategories: []string{
		"Village Classes", "Baby Sitting", "Clothing", "Diapers", "Necessities",
		"Accessories", "Toys", "Food / Snacks", "Haircut", "Activities",
		"Uber / Lyft", "Misc.",
	}},
	{Name: "Vehicles", Subcategories: []string{
		"Vehicle Fixes", "Vehicle Other", "Gas", "DMV", "Parts", "Tires / Wheels",
		"Insurance", "Oil Changes", "Car Wash", "Parking", "Tolls",
	}},
	{Name: "Home", Subcategories: []string{
		"Home Necessities", "Home Décor", "House Cleaning", "Bathroom", "Bedrooms",
		"Kitchen", "Tools / Hardware", "Storage", "Homeware", "Subscriptions",
	}},
	{Name: "Other", Subcategories: []string{
		"Gifts", "Taxes", "Donations", "Gatherings", "Parties", "Clothes", "Shoes",
		"Pets", "Target AutoPay", "Stupid Tax", "Amazon Prime", "Fees", "Reversal",
		"Entertainment", "Other",
	}},
	{Name: "Vacation", Subcategories: []string{
		"Flights/Travel", "Rental Car", "Airport", "Taxi", "Food", "Eating Out",
		"Gas", "Activities", "Bedding", "Fees", "Physical Goods", "Housing",
		"Necessities",
	}},
}

// CategoryNames returns the top-level category names in display order.
func CategoryNames() []string {
	names := make([]string, len(ExpenseCategories))
	for i, c := range ExpenseCategories {
		names[i] = c.Name
	}
	return names
}

// Subcategories returns the permitted subcategories for a category and
// whether the category exists.
func Subcategories(category string) ([]string, bool) {
	for _, c := range ExpenseCategories {
		if c.Name == category {
			return c.Subcategories, true
		}
	}
	return nil, false
}

// ValidPair reports whether (category, subcategory) is part of the
// taxonomy.
func ValidPair(category, subcategory string) bool {
	subs, ok := Subcategories(category)
	if !ok {
		return false
	}
	for _, s := range subs {
		if s == subcategory {
			return true
		}
	}
	return false
}

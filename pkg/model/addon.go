package model

// AddOn is a booking add-on with a fixed surcharge.
type AddOn struct {
	Name      string
	Label     string
	Surcharge float64
}

// AddOns is the fixed add-on catalog, including the zero-surcharge "none"
// choice, in menu order.
var AddOns = []AddOn{
	{Name: "NONE", Label: "No Meal", Surcharge: 0},
	{Name: "VEG", Label: "Standard Veg", Surcharge: 0},
	{Name: "CHICKEN", Label: "Spicy Chicken", Surcharge: 450},
	{Name: "JAIN", Label: "Jain Meal", Surcharge: 150},
	{Name: "CHEF", Label: "Chef's Special", Surcharge: 1200},
}

// AddOnByName looks up an add-on by its catalog name.
func AddOnByName(name string) (AddOn, bool) {
	for _, a := range AddOns {
		if a.Name == name {
			return a, true
		}
	}
	return AddOn{}, false
}

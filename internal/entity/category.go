package entity

// Category names a rating bucket of the recommendation form.
type Category string

// Rating categories in the order the recommendation model expects them.
const (
	CategoryGyms          Category = "Gyms"
	CategoryLocalServices Category = "Local_Services"
	CategoryMonuments     Category = "Monuments"
	CategoryMuseums       Category = "Museums"
	CategoryParks         Category = "Parks"
	CategoryRestaurants   Category = "Restaurants"
	CategorySwimmingPools Category = "Swimming_Pools"
	CategoryTheatres      Category = "Theatres"
	CategoryViewPoints    Category = "View_Points"
)

// Rating bounds rendered as input hints. They are not enforced.
const (
	MinRating = 0
	MaxRating = 5
)

var categories = []Category{
	CategoryGyms,
	CategoryLocalServices,
	CategoryMonuments,
	CategoryMuseums,
	CategoryParks,
	CategoryRestaurants,
	CategorySwimmingPools,
	CategoryTheatres,
	CategoryViewPoints,
}

// Categories returns a copy of the ordered category list.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Label returns the human readable form of the category.
func (c Category) Label() string {
	b := []byte(c)
	for i := range b {
		if b[i] == '_' {
			b[i] = ' '
		}
	}
	return string(b)
}

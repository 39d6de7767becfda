package property

// Property represents a single listing from the property dataset.
// Listings are reference data: loaded once at process start and never
// mutated by the agent.
type Property struct {
	ID           int64    `json:"id" db:"id"`
	Type         string   `json:"type" db:"type"`
	Location     string   `json:"location" db:"location"`
	Neighborhood string   `json:"neighborhood" db:"neighborhood"`
	Price        float64  `json:"price" db:"price"`
	Currency     string   `json:"currency" db:"currency"`
	Bedrooms     int      `json:"bedrooms" db:"bedrooms"`
	Bathrooms    int      `json:"bathrooms" db:"bathrooms"`
	AreaM2       float64  `json:"area_m2" db:"area_m2"`
	Description  string   `json:"description" db:"description"`
	GardenArea   *float64 `json:"garden_area,omitempty" db:"garden_area"`
}

package domain

// Location is a selectable city/district used to scope issues, budgets and
// representatives.
type Location struct {
	LocationID  string    `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Type        string    `json:"type"` // city | district
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

type CreateLocationRequest struct {
	Name        string    `json:"name" validate:"required"`
	State       string    `json:"state" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	Coordinates *GeoPoint `json:"coordinates"`
}

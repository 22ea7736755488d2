package domain

// Representative is an elected official tied to a location.
type Representative struct {
	RepID        string  `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Party        *string `json:"party,omitempty"`
	LocationID   string  `json:"location_id"`
	ContactEmail *string `json:"contact_email,omitempty"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	TermStart    string  `json:"term_start,omitempty"`
	TermEnd      string  `json:"term_end,omitempty"`
}

type CreateRepresentativeRequest struct {
	Name         string  `json:"name" validate:"required"`
	Position     string  `json:"position" validate:"required"`
	Party        *string `json:"party"`
	LocationID   string  `json:"location_id" validate:"required"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	Bio          *string `json:"bio"`
	AvatarURL    *string `json:"avatar_url"`
	TermStart    string  `json:"term_start"`
	TermEnd      string  `json:"term_end"`
}

type RepresentativeFilter struct {
	Position   string
	Party      string
	LocationID string
}

func (f RepresentativeFilter) Matches(r *Representative) bool {
	if f.Position != "" && r.Position != f.Position {
		return false
	}
	if f.Party != "" && (r.Party == nil || *r.Party != f.Party) {
		return false
	}
	if f.LocationID != "" && r.LocationID != f.LocationID {
		return false
	}
	return true
}

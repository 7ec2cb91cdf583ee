package domain

// Room is a bookable room. Read-only from the engine's perspective.
type Room struct {
	ID          int64
	Title       string
	Price       float64 // nightly price
	Size        float64 // floor area, m²
	Capacity    int     // guests
	Description string
	Image       *Image
}

// Image is a reference to a hosted room picture.
type Image struct {
	URL string // path relative to the store's host, e.g. "/uploads/room1.jpg"
}

// HasImage returns true if the room carries an image reference
func (r *Room) HasImage() bool {
	return r.Image != nil && r.Image.URL != ""
}

package entity

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
)

// Hotel is catalog reference data. Hotels are appended by admins and never
// updated or deleted afterwards.
type Hotel struct {
	ID          int64
	Name        string
	Address     string
	Description string
	Rating      float64 // 0.0 - 5.0
	PriceRange  string  // display tag, e.g. "$$ - $$$"
	ImageURL    string
	Gallery     []string
	Rooms       []Room // insertion order
	Amenities   []string
}

// FindRoom returns the hotel's room with the given id, or nil.
func (h *Hotel) FindRoom(roomID int64) *Room {
	for i := range h.Rooms {
		if h.Rooms[i].ID == roomID {
			return &h.Rooms[i]
		}
	}
	return nil
}

// Room belongs to exactly one hotel for its lifetime.
type Room struct {
	ID         int64 // unique within the whole catalog
	HotelID    int64
	Type       RoomType
	Price      float64 // nightly rate, positive
	RoomNumber string  // display only
	Amenities  []string
}

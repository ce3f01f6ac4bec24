package response

import "hotel-booking/internal/data/entity"

type HotelResponse struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Description string         `json:"description"`
	Rating      float64        `json:"rating"`
	PriceRange  string         `json:"price_range"`
	ImageURL    string         `json:"image_url"`
	Gallery     []string       `json:"gallery"`
	Rooms       []RoomResponse `json:"rooms"`
	Amenities   []string       `json:"amenities"`
}

type RoomResponse struct {
	ID         int64           `json:"id"`
	HotelID    int64           `json:"hotel_id"`
	Type       entity.RoomType `json:"type"`
	Price      float64         `json:"price"`
	RoomNumber string          `json:"room_number"`
	Amenities  []string        `json:"amenities"`
}

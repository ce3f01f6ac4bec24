package request

type CreateHotelRequest struct {
	Name        string   `json:"name" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating" validate:"min=0,max=5"`
	PriceRange  string   `json:"price_range"`
	ImageURL    string   `json:"image_url"`
	Gallery     []string `json:"gallery"`
	Amenities   []string `json:"amenities"`
}

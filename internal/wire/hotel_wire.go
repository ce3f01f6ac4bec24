package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHotel(r chi.Router, hotelHandler *adaptor.HotelHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/hotels - List the hotel catalog
	r.Get("/api/hotels", hotelHandler.GetHotels)

	// GET /api/hotels/{id} - Get one hotel with its rooms
	r.Get("/api/hotels/{id}", hotelHandler.GetHotelByID)

	// ==================== ADMIN ROUTES ====================
	// Role checks beyond identity lookup are out of scope; the admin prefix
	// only groups the administrative surface.
	r.Route("/api/admin/hotels", func(r chi.Router) {
		// POST /api/admin/hotels - Append a hotel with default rooms
		r.Post("/", hotelHandler.CreateHotel)
	})
}

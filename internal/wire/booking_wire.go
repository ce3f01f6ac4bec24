package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Reserve a room for a date range
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// PUT /api/bookings/{id}/cancel - Cancel a reservation
	r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

	// GET /api/users/{id}/bookings - Booking history for one user
	r.Get("/api/users/{id}/bookings", bookingHandler.GetUserBookings)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// GET /api/admin/bookings - Every reservation, newest check-in first
		r.Get("/", bookingHandler.GetAllBookings)
	})
}

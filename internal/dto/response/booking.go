package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID         string                   `json:"id"`
	UserID     int64                    `json:"user_id"`
	HotelID    int64                    `json:"hotel_id"`
	RoomID     int64                    `json:"room_id"`
	CheckIn    string                   `json:"check_in"`  // YYYY-MM-DD
	CheckOut   string                   `json:"check_out"` // YYYY-MM-DD
	Status     entity.ReservationStatus `json:"status"`
	Nights     int                      `json:"nights"`
	TotalPrice float64                  `json:"total_price"`
	CreatedAt  time.Time                `json:"created_at"`
}

// UserBookingResponse is a reservation joined with its catalog data, the
// shape of the per-user booking history.
type UserBookingResponse struct {
	ReservationResponse
	Hotel HotelResponse `json:"hotel"`
	Room  RoomResponse  `json:"room"`
}

// AdminBookingResponse additionally joins the booking user; the admin view
// includes cancelled reservations.
type AdminBookingResponse struct {
	ReservationResponse
	Hotel HotelResponse `json:"hotel"`
	Room  RoomResponse  `json:"room"`
	User  UserResponse  `json:"user"`
}

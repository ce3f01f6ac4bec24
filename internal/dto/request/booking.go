package request

type CreateBookingRequest struct {
	UserID  int64 `json:"user_id" validate:"required"`
	HotelID int64 `json:"hotel_id" validate:"required"`
	RoomID  int64 `json:"room_id" validate:"required"`

	// Calendar dates in YYYY-MM-DD form; the booked interval is
	// [check_in, check_out).
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

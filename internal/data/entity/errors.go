package entity

import (
	"net/http"

	"hotel-booking/pkg/apperror"
)

var (
	ErrHotelNotFound       = apperror.New(http.StatusNotFound, "hotel not found")
	ErrRoomNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrUserNotFound        = apperror.New(http.StatusNotFound, "user not found")
	ErrReservationNotFound = apperror.New(http.StatusNotFound, "reservation not found")
	ErrInvalidRange        = apperror.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrBookingConflict     = apperror.New(http.StatusConflict, "these dates are unavailable for the selected room")
)

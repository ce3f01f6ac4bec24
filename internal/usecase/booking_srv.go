package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/store"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.ReservationResponse, error)
	CancelBooking(ctx context.Context, reservationID string) error
	GetUserBookings(ctx context.Context, userID int64) ([]*response.UserBookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context) ([]*response.AdminBookingResponse, error)
}

type bookingService struct {
	store *store.Store
	log   *zap.Logger
}

func NewBookingService(st *store.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: st,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.ReservationResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse date range
	checkIn, checkOut, err := parseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// Resolve user
	if user := s.store.User.FindByID(req.UserID); user == nil {
		return nil, entity.ErrUserNotFound
	}

	// Resolve hotel and room; the room must belong to the hotel
	hotel := s.store.Catalog.FindHotelByID(req.HotelID)
	if hotel == nil {
		return nil, entity.ErrHotelNotFound
	}
	room := hotel.FindRoom(req.RoomID)
	if room == nil {
		return nil, entity.ErrRoomNotFound
	}

	// Availability check and insert happen as one atomic step in the store
	res, err := s.store.Reservation.Book(req.UserID, req.HotelID, req.RoomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("reservation_id", res.ID),
		zap.Int64("user_id", res.UserID),
		zap.Int64("hotel_id", res.HotelID),
		zap.Int64("room_id", res.RoomID),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
	)

	return buildReservationResponse(res, room.Price), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, reservationID string) error {
	if err := s.store.Reservation.Cancel(reservationID); err != nil {
		return err
	}

	s.log.Info("Booking cancelled", zap.String("reservation_id", reservationID))
	return nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int64) ([]*response.UserBookingResponse, error) {
	reservations := s.store.Reservation.ListByUser(userID)

	out := make([]*response.UserBookingResponse, 0, len(reservations))
	for _, res := range reservations {
		hotel := s.store.Catalog.FindHotelByID(res.HotelID)
		if hotel == nil {
			s.log.Error("Reservation references unknown hotel",
				zap.String("reservation_id", res.ID),
				zap.Int64("hotel_id", res.HotelID),
			)
			continue
		}
		room := hotel.FindRoom(res.RoomID)
		if room == nil {
			s.log.Error("Reservation references unknown room",
				zap.String("reservation_id", res.ID),
				zap.Int64("room_id", res.RoomID),
			)
			continue
		}

		out = append(out, &response.UserBookingResponse{
			ReservationResponse: *buildReservationResponse(res, room.Price),
			Hotel:               *buildHotelResponse(hotel),
			Room:                buildRoomResponse(room),
		})
	}

	return out, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context) ([]*response.AdminBookingResponse, error) {
	reservations := s.store.Reservation.ListAll()

	// Administrative view: newest stays first
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].CheckIn.After(reservations[j].CheckIn)
	})

	out := make([]*response.AdminBookingResponse, 0, len(reservations))
	for _, res := range reservations {
		hotel := s.store.Catalog.FindHotelByID(res.HotelID)
		if hotel == nil {
			s.log.Error("Reservation references unknown hotel",
				zap.String("reservation_id", res.ID),
				zap.Int64("hotel_id", res.HotelID),
			)
			continue
		}
		room := hotel.FindRoom(res.RoomID)
		if room == nil {
			s.log.Error("Reservation references unknown room",
				zap.String("reservation_id", res.ID),
				zap.Int64("room_id", res.RoomID),
			)
			continue
		}
		user := s.store.User.FindByID(res.UserID)
		if user == nil {
			s.log.Error("Reservation references unknown user",
				zap.String("reservation_id", res.ID),
				zap.Int64("user_id", res.UserID),
			)
			continue
		}

		out = append(out, &response.AdminBookingResponse{
			ReservationResponse: *buildReservationResponse(res, room.Price),
			Hotel:               *buildHotelResponse(hotel),
			Room:                buildRoomResponse(room),
			User:                *buildUserResponse(user),
		})
	}

	return out, nil
}

// parseDateRange parses YYYY-MM-DD check-in/check-out strings. Malformed
// dates and empty or inverted ranges are all invalid-range failures.
func parseDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := time.Parse(time.DateOnly, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, entity.ErrInvalidRange
	}

	checkOut, err := time.Parse(time.DateOnly, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, entity.ErrInvalidRange
	}

	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, entity.ErrInvalidRange
	}

	return checkIn, checkOut, nil
}

func buildReservationResponse(res *entity.Reservation, nightlyRate float64) *response.ReservationResponse {
	nights := res.Nights()

	return &response.ReservationResponse{
		ID:         res.ID,
		UserID:     res.UserID,
		HotelID:    res.HotelID,
		RoomID:     res.RoomID,
		CheckIn:    res.CheckIn.Format(time.DateOnly),
		CheckOut:   res.CheckOut.Format(time.DateOnly),
		Status:     res.Status,
		Nights:     nights,
		TotalPrice: nightlyRate * float64(nights),
		CreatedAt:  res.CreatedAt,
	}
}

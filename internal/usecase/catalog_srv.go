package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/store"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	// Public endpoints
	GetHotels(ctx context.Context) ([]*response.HotelResponse, error)
	GetHotelByID(ctx context.Context, id int64) (*response.HotelResponse, error)

	// Admin endpoints
	CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error)
}

type catalogService struct {
	store *store.Store
	log   *zap.Logger
}

func NewCatalogService(st *store.Store, log *zap.Logger) CatalogService {
	return &catalogService{
		store: st,
		log:   log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetHotels(ctx context.Context) ([]*response.HotelResponse, error) {
	hotels := s.store.Catalog.ListHotels()

	out := make([]*response.HotelResponse, len(hotels))
	for i, h := range hotels {
		out[i] = buildHotelResponse(h)
	}
	return out, nil
}

func (s *catalogService) GetHotelByID(ctx context.Context, id int64) (*response.HotelResponse, error) {
	hotel := s.store.Catalog.FindHotelByID(id)
	if hotel == nil {
		return nil, entity.ErrHotelNotFound
	}
	return buildHotelResponse(hotel), nil
}

func (s *catalogService) CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hotel := s.store.Catalog.AddHotel(&entity.Hotel{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Rating:      req.Rating,
		PriceRange:  req.PriceRange,
		ImageURL:    req.ImageURL,
		Gallery:     req.Gallery,
		Amenities:   req.Amenities,
	})

	s.log.Info("Hotel created",
		zap.Int64("hotel_id", hotel.ID),
		zap.String("name", hotel.Name),
	)

	return buildHotelResponse(hotel), nil
}

func buildHotelResponse(hotel *entity.Hotel) *response.HotelResponse {
	rooms := make([]response.RoomResponse, len(hotel.Rooms))
	for i := range hotel.Rooms {
		rooms[i] = buildRoomResponse(&hotel.Rooms[i])
	}

	return &response.HotelResponse{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Address:     hotel.Address,
		Description: hotel.Description,
		Rating:      hotel.Rating,
		PriceRange:  hotel.PriceRange,
		ImageURL:    hotel.ImageURL,
		Gallery:     hotel.Gallery,
		Rooms:       rooms,
		Amenities:   hotel.Amenities,
	}
}

func buildRoomResponse(room *entity.Room) response.RoomResponse {
	return response.RoomResponse{
		ID:         room.ID,
		HotelID:    room.HotelID,
		Type:       room.Type,
		Price:      room.Price,
		RoomNumber: room.RoomNumber,
		Amenities:  room.Amenities,
	}
}

package usecase

import (
	"hotel-booking/internal/data/store"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Booking BookingService
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(st, log),
		Catalog: NewCatalogService(st, log),
		Booking: NewBookingService(st, log),
	}
}

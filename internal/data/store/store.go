package store

import (
	"go.uber.org/zap"
)

// Store groups the in-memory stores the services work against. State lives
// for the lifetime of the process; durability is out of scope here.
type Store struct {
	Catalog     *CatalogStore
	User        *UserStore
	Reservation *ReservationStore
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		Catalog:     NewCatalogStore(seedHotels(), log),
		User:        NewUserStore(seedUsers(), log),
		Reservation: NewReservationStore(log),
	}
}

package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/login - Resolve a username to an identity (public)
	r.Post("/api/login", authHandler.Login)
}

package wire

import (
	"hangar-booking/internal/adaptor"
	"hangar-booking/internal/data/repository"
	"hangar-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHangar(
	r chi.Router,
	hangarHandler *adaptor.HangarHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the directory needs no account
	r.Get("/api/hangars", hangarHandler.GetHangars)
	r.Get("/api/hangars/{id}", hangarHandler.GetHangarByID)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/hangars - publish a listing
		r.Post("/api/hangars", hangarHandler.CreateHangar)

		// PATCH /api/hangars/{id}/price - overwrite the daily price
		r.Patch("/api/hangars/{id}/price", hangarHandler.UpdatePrice)
	})
}

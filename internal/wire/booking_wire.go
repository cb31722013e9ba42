package wire

import (
	"hangar-booking/internal/adaptor"
	"hangar-booking/internal/data/repository"
	"hangar-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	hangarHandler *adaptor.HangarHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All booking routes require an authenticated customer
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - create booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/customer - caller's booking history, newest first
		r.Get("/customer", bookingHandler.GetCustomerBookings)

		// GET /api/bookings/{id} - single booking, ownership-checked
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PATCH /api/bookings/{id}/cancel - cancel if still cancellable
		r.Patch("/{id}/cancel", bookingHandler.CancelBooking)

		// PATCH /api/bookings/{id}/price - legacy hangar price update route,
		// {id} is a hangar id here
		r.Patch("/{id}/price", hangarHandler.UpdatePrice)
	})
}

package credit

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/credits", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/calculate-multi", h.CalculateMulti)
	})
}

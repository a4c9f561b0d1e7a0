package quote

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/quotes", func(r chi.Router) {
		r.Post("/preview", h.Preview)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/export", h.ExportAll)
		r.Get("/{id}", h.Show)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/export", h.Export)
	})
}

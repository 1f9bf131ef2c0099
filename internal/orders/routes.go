package orders

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/with-items/all", h.ListWithItems)
		r.Get("/with-items/{id}", h.ShowWithItems)
		r.Post("/bulk", h.CreateBulk)
		r.Put("/bulk/{id}", h.UpdateBulk)
		r.Delete("/bulk/{id}", h.DeleteBulk)
		r.Patch("/{id}/payment", h.UpdatePayment)
	})
}

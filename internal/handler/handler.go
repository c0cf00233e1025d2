package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/StudioAP/kaigi-scheduler/internal/service"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the API routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/meetings", func(r chi.Router) {
		r.Get("/", h.ListMeetings)
		r.Post("/", h.CreateMeeting)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetMeeting)
			r.Get("/results", h.MeetingResults)
			r.Get("/participants", h.ListParticipants)
			r.Post("/participants", h.AddParticipant)
		})
	})
}

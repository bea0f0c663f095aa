// AngelaMos | 2026
// handler.go

package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/kixi-backend/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/trash", h.ListTrashed)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/restore", h.Restore)
		r.Delete("/{id}/purge", h.Purge)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToCourseResponseList(courses))
}

func (h *Handler) ListTrashed(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListTrashed(r.Context())
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToCourseResponseList(courses))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToCourseResponse(c))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if err := core.DecodeAndValidate(r, h.validator, &req); err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.Created(w, ToCourseResponse(c))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	var req CourseRequest
	if err := core.DecodeAndValidate(r, h.validator, &req); err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToCourseResponse(c))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.NoContent(w)
}

func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Restore(r.Context(), id)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToCourseResponse(c))
}

func (h *Handler) Purge(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	if err := h.service.Purge(r.Context(), id); err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.NoContent(w)
}

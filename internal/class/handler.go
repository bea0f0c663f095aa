// AngelaMos | 2026
// handler.go

package class

import (
	"net/http"
	"strings"

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
	r.Route("/classes", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/trash", h.ListTrashed)
		r.Post("/", h.Create)
		r.Get("/{code}", h.Get)
		r.Put("/{code}", h.Update)
		r.Delete("/{code}", h.Delete)
		r.Post("/{code}/restore", h.Restore)
		r.Delete("/{code}/purge", h.Purge)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.List(r.Context())
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	h.renderList(w, r, classes)
}

func (h *Handler) ListTrashed(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.ListTrashed(r.Context())
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	h.renderList(w, r, classes)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	code, err := parseCode(r)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Get(r.Context(), code)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if err := core.DecodeAndValidate(r, h.validator, &req); err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	h.render(w, r, http.StatusCreated, c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	code, err := parseCode(r)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	var req UpdateClassRequest
	if err := core.DecodeAndValidate(r, h.validator, &req); err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Update(r.Context(), code, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code, err := parseCode(r)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), code); err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.NoContent(w)
}

func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	code, err := parseCode(r)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	c, err := h.service.Restore(r.Context(), code)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, c)
}

func (h *Handler) Purge(w http.ResponseWriter, r *http.Request) {
	code, err := parseCode(r)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	if err := h.service.Purge(r.Context(), code); err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.NoContent(w)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c *Class) {
	resp, err := h.service.ProjectOne(r.Context(), c)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.JSON(w, status, resp)
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, classes []*Class) {
	resp, err := h.service.Project(r.Context(), classes)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, resp)
}

func parseCode(r *http.Request) (string, error) {
	code := strings.TrimSpace(chi.URLParam(r, "code"))
	if code == "" {
		return "", core.InvalidInputError("code is required")
	}
	return code, nil
}

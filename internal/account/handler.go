// AngelaMos | 2026
// handler.go

package account

import (
	"net/http"
	"strconv"

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

// RegisterRoutes mounts the account routes. extra is mounted inside the
// /accounts route so nested resources (account roles) share the prefix.
func (h *Handler) RegisterRoutes(r chi.Router, extra ...func(chi.Router)) {
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/trash", h.ListTrashed)
		r.Get("/active", h.ListByActive)
		r.Get("/username/{username}", h.GetByUsername)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/restore", h.Restore)
		r.Delete("/{id}/purge", h.Purge)
		r.Post("/{id}/login", h.RecordLogin)

		for _, mount := range extra {
			mount(r)
		}
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponseList(accounts))
}

func (h *Handler) ListTrashed(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListTrashed(r.Context())
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponseList(accounts))
}

func (h *Handler) ListByActive(w http.ResponseWriter, r *http.Request) {
	active := true
	if raw := r.URL.Query().Get("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			core.JSONError(w, r, core.InvalidInputError("active must be true or false"))
			return
		}
		active = parsed
	}

	accounts, err := h.service.ListByActive(r.Context(), active)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponseList(accounts))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponse(a))
}

func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponse(a))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req AccountRequest
	if err := core.DecodeAndValidate(r, h.validator, &req); err != nil {
		core.JSONError(w, r, err)
		return
	}

	a, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.Created(w, ToAccountResponse(a))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	var req AccountRequest
	if err := core.DecodeAndValidate(r, h.validator, &req); err != nil {
		core.JSONError(w, r, err)
		return
	}

	a, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponse(a))
}

func (h *Handler) RecordLogin(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	a, err := h.service.RecordLogin(r.Context(), id)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponse(a))
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

	a, err := h.service.Restore(r.Context(), id)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, ToAccountResponse(a))
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

// AngelaMos | 2026
// handler.go

package accountrole

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/kixi-backend/internal/core"
	"github.com/carterperez-dev/kixi-backend/internal/role"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Mount registers the nested routes on the /accounts router.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/{id}/roles", h.List)
	r.Post("/{id}/roles/{roleID}", h.Assign)
	r.Delete("/{id}/roles/{roleID}", h.Remove)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	accountID, err := core.ParseID(r, "id")
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	roles, err := h.service.Roles(r.Context(), accountID)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.OK(w, role.ToRoleResponseList(roles))
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	accountID, roleID, err := parsePair(r)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	ar, rl, err := h.service.Assign(r.Context(), accountID, roleID)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.Created(w, ToAccountRoleResponse(ar, rl))
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	accountID, roleID, err := parsePair(r)
	if err != nil {
		core.JSONError(w, r, err)
		return
	}

	if err := h.service.Remove(r.Context(), accountID, roleID); err != nil {
		core.JSONError(w, r, err)
		return
	}
	core.NoContent(w)
}

func parsePair(r *http.Request) (int64, int64, error) {
	accountID, err := core.ParseID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	roleID, err := core.ParseID(r, "roleID")
	if err != nil {
		return 0, 0, err
	}
	return accountID, roleID, nil
}

package usershandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ulms/internal/domain/auth"
	"ulms/internal/domain/employee"
	"ulms/internal/transport/http/api"
	"ulms/internal/transport/http/middleware"
)

type Handler struct {
	Service *employee.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *employee.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	// The roster endpoint backs report bucket pre-seeding on the admin
	// report screens, hence the path under /leaves/admin.
	r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).
		Get("/leaves/admin/users/employees", h.handleRoster)

	r.Route("/users", func(r chi.Router) {
		// Same roster, also reachable beside the account management routes.
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/employees", h.handleRoster)

		manage := r.With(middleware.RequirePermission(auth.PermUsersManage, h.Perms))
		manage.Post("/", h.handleCreate)
		manage.Get("/{id}", h.handleGet)
		manage.Put("/{id}", h.handleUpdate)
		manage.Delete("/{id}", h.handleDeactivate)
		manage.Post("/{id}/reactivate", h.handleReactivate)
	})
}

func (h *Handler) handleRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.Service.Roster(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "roster_failed", "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	if roster == nil {
		roster = []employee.Employee{}
	}
	api.Success(w, roster, middleware.GetRequestID(r.Context()))
}

type createRequest struct {
	employee.Employee
	Password string `json:"password"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.Register(r.Context(), req.Employee, req.Password)
	switch {
	case errors.Is(err, employee.ErrMissingField), errors.Is(err, employee.ErrInvalidRole):
		api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to create account", middleware.GetRequestID(r.Context()))
		return
	}

	created, err := h.Service.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to load created account", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "employee lookup failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var emp employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}
	emp.ID = chi.URLParam(r, "id")

	err := h.Service.Update(r.Context(), emp)
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, employee.ErrInvalidRole):
		api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to update account", middleware.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Service.Get(r.Context(), emp.ID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to load updated account", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, updated, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Deactivate(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "deactivate_failed", "failed to deactivate account", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"deactivated": true}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReactivate(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Reactivate(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "reactivate_failed", "failed to reactivate account", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"reactivated": true}, middleware.GetRequestID(r.Context()))
}

package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ulms/internal/domain/auth"
	"ulms/internal/domain/leave"
	"ulms/internal/transport/http/api"
	"ulms/internal/transport/http/middleware"
)

type Handler struct {
	Service *leave.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *leave.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/types", h.handleTypes)
		r.With(middleware.RequirePermission(auth.PermLeaveSubmit, h.Perms)).Post("/", h.handleSubmit)
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/my", h.handleMyRequests)
		r.With(middleware.RequirePermission(auth.PermLeaveReview, h.Perms)).Get("/pending", h.handlePending)
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/{id}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermLeaveReview, h.Perms)).Put("/{id}/approve", h.handleApprove)
		r.With(middleware.RequirePermission(auth.PermLeaveReview, h.Perms)).Put("/{id}/reject", h.handleReject)
		r.With(middleware.RequirePermission(auth.PermLeaveSubmit, h.Perms)).Delete("/{id}", h.handleCancel)
	})
}

func (h *Handler) handleTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.Types(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "types_failed", "failed to load leave types", middleware.GetRequestID(r.Context()))
		return
	}
	if types == nil {
		types = []leave.LeaveType{}
	}
	api.Success(w, types, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var in leave.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.Submit(r.Context(), user.UserID, in)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMyRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	records, err := h.Service.MyRequests(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to load leave requests", middleware.GetRequestID(r.Context()))
		return
	}
	if records == nil {
		records = []leave.Record{}
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	records, err := h.Service.PendingForReviewer(r.Context(), user)
	if errors.Is(err, leave.ErrForbidden) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not a reviewer role", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to load pending requests", middleware.GetRequestID(r.Context()))
		return
	}
	if records == nil {
		records = []leave.Record{}
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, leave.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lookup_failed", "leave request lookup failed", middleware.GetRequestID(r.Context()))
		return
	}

	// Staff may only read their own requests; reviewer roles see all.
	if user.Role == auth.RoleStaff && (record.Employee == nil || record.Employee.ID != user.UserID) {
		api.Fail(w, http.StatusForbidden, "forbidden", "not your leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.Approve(r.Context(), chi.URLParam(r, "id"), user)
	if !h.writeDecisionError(w, r, err) {
		api.Success(w, record, middleware.GetRequestID(r.Context()))
	}
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.Reject(r.Context(), chi.URLParam(r, "id"), req.Reason, user)
	if !h.writeDecisionError(w, r, err) {
		api.Success(w, record, middleware.GetRequestID(r.Context()))
	}
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Service.Cancel(r.Context(), chi.URLParam(r, "id"), user.UserID)
	if errors.Is(err, leave.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "no pending request to cancel", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "cancel_failed", "failed to cancel request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"cancelled": true}, middleware.GetRequestID(r.Context()))
}

// writeDecisionError maps approval workflow errors onto responses and reports
// whether a response was written.
func (h *Handler) writeDecisionError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
	case errors.Is(err, leave.ErrInvalidState):
		api.Fail(w, http.StatusConflict, "invalid_state", "request already decided", middleware.GetRequestID(r.Context()))
	case errors.Is(err, leave.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed to decide this request", middleware.GetRequestID(r.Context()))
	case errors.Is(err, leave.ErrReasonRequired):
		api.Fail(w, http.StatusBadRequest, "reason_required", "rejection reason is required", middleware.GetRequestID(r.Context()))
	default:
		api.Fail(w, http.StatusInternalServerError, "decision_failed", "failed to update request", middleware.GetRequestID(r.Context()))
	}
	return true
}

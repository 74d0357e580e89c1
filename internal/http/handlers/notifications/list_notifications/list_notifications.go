package listnotifications

import (
	"fmt"
	"net/http"
	"strconv"

	c "volunteercal/internal/core/domain/common"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/services"
	service "volunteercal/internal/core/services/list_notifications"
	"volunteercal/internal/http/handlers/notifications"
	"volunteercal/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Notifications []response.Notification `json:"notifications"`
	UnreadCount   uint                    `json:"unread_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	unreadOnly, err := parseUnreadOnly(r.URL.Query().Get("unread_only"))
	if err != nil {
		response.RenderError(rw, "invalid unread_only query parameter", http.StatusBadRequest)
		return
	}
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}
	offset, err := parseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		response.RenderError(rw, "invalid offset query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		UnreadOnly: unreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		notifications.RenderError(rw, err)
		return
	}
	response.Render(
		rw,
		Result{Notifications: response.Notifications(result.Notifications), UnreadCount: result.UnreadCount},
		http.StatusOK,
	)
}

func parseUnreadOnly(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l == 0 || l > service.MAX_LIMIT {
		return limit, fmt.Errorf("limit must be between 1 and %v", service.MAX_LIMIT)
	}
	return c.NewOptional(uint(l), true), nil
}

func parseOffset(raw string) (offset uint, err error) {
	if raw == "" {
		return offset, nil
	}
	o, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return offset, err
	}
	return uint(o), nil
}

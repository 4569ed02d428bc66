package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmcare/pkg/apperror"
	"farmcare/pkg/middleware"
	"farmcare/pkg/notify/service"
)

type NotifCtrl struct{ svc service.NotificationService }

func New(svc service.NotificationService) *NotifCtrl { return &NotifCtrl{svc} }

func (h *NotifCtrl) List(c echo.Context) error {
	items, unread, err := h.svc.List(middleware.UserID(c), c.QueryParam("unread") == "true")
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"notifications": items, "unread": unread})
}

func (h *NotifCtrl) Read(c echo.Context) error {
	if err := h.svc.MarkRead(c.Param("id"), middleware.UserID(c)); err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NotifCtrl) ReadAll(c echo.Context) error {
	n, err := h.svc.MarkAllRead(middleware.UserID(c))
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "ok", "updated": n})
}

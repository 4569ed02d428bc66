package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmcare/pkg/achievement/service"
	"farmcare/pkg/apperror"
	"farmcare/pkg/middleware"
)

type AchCtrl struct{ svc service.AchievementService }

func New(svc service.AchievementService) *AchCtrl { return &AchCtrl{svc} }

func (h *AchCtrl) Stats(c echo.Context) error {
	st, err := h.svc.Stats(middleware.UserID(c))
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"stats":               st,
		"completion_rate_pct": st.RatePercent(),
	})
}

func (h *AchCtrl) Badges(c echo.Context) error {
	rows, err := h.svc.Catalogue(middleware.UserID(c))
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"badges": rows})
}

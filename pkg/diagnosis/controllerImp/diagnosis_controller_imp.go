package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmcare/pkg/apperror"
	"farmcare/pkg/diagnosis"
	"farmcare/pkg/logger"
	"farmcare/pkg/middleware"
)

type DiagnosisCtrl struct{ client diagnosis.Client }

func New(client diagnosis.Client) *DiagnosisCtrl { return &DiagnosisCtrl{client} }

func (h *DiagnosisCtrl) Diagnose(c echo.Context) error {
	var body struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.Bind(&body); err != nil {
		return apperror.JSON(c, apperror.BadRequest("bad json"))
	}
	res, err := h.client.Diagnose(c.Request().Context(), body.ImageURL)
	if errors.Is(err, diagnosis.ErrNoImage) {
		return apperror.JSON(c, apperror.BadRequest(err.Error()))
	}
	if err != nil {
		logger.Warn().Err(err).Str("user_id", middleware.UserID(c)).Msg("diagnosis failed")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "diagnosis service unavailable"})
	}
	return c.JSON(http.StatusOK, res)
}

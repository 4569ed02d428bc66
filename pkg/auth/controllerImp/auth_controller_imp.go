package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmcare/pkg/apperror"
	"farmcare/pkg/auth/controller"
	"farmcare/pkg/middleware"
)

type authCtrl struct{ devMode bool }

// NewAuthController serves the identity helpers. DevLogin is refused unless devMode is set.
func NewAuthController(devMode bool) controller.AuthController { return &authCtrl{devMode: devMode} }

// DevLogin pins ?uid= (or the default dev user) in the identity cookie.
func (h *authCtrl) DevLogin(c echo.Context) error {
	if !h.devMode {
		return apperror.JSON(c, apperror.New(http.StatusForbidden, "dev login disabled"))
	}
	uid := strings.TrimSpace(c.QueryParam("uid"))
	if uid == "" {
		uid = middleware.DevDefaultID
	}
	middleware.SetUserCookie(c, uid)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"uid": middleware.UserID(c), "dev": h.devMode})
}

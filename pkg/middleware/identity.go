package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmcare/pkg/apperror"
)

const (
	UserKey      = "uid"
	UserHeader   = "X-User-Id"
	UserCookie   = "FARM_UID"
	DevDefaultID = "U_DEV_DEFAULT"
)

// Identity resolves the calling user. The X-User-Id header always wins.
// When required is false it falls back to the dev cookie, then ?uid=, then a
// default dev user, and remembers the choice in the cookie. When required is
// true a request without the header is answered 401.
func Identity(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(UserHeader))
			if uid == "" && required {
				return apperror.JSON(c, apperror.Unauthorized("missing "+UserHeader))
			}
			if uid == "" {
				if ck, err := c.Cookie(UserCookie); err == nil {
					uid = ck.Value
				}
			}
			if q := c.QueryParam("uid"); uid == "" && q != "" {
				uid = q
				SetUserCookie(c, uid)
			}
			if uid == "" {
				uid = DevDefaultID
				SetUserCookie(c, uid)
			}
			c.Set(UserKey, uid)
			return next(c)
		}
	}
}

func SetUserCookie(c echo.Context, uid string) {
	c.SetCookie(&http.Cookie{Name: UserCookie, Value: uid, Path: "/"})
}

// UserID returns the identity Identity stored on the context.
func UserID(c echo.Context) string {
	uid, _ := c.Get(UserKey).(string)
	return uid
}

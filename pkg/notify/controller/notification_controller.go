package controller

import "github.com/labstack/echo/v4"

type NotificationController interface {
	List(c echo.Context) error
	Read(c echo.Context) error
	ReadAll(c echo.Context) error
}

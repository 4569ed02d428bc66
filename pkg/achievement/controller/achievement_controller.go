package controller

import "github.com/labstack/echo/v4"

type AchievementController interface {
	Stats(c echo.Context) error
	Badges(c echo.Context) error
}

package controller

import "github.com/labstack/echo/v4"

type PlantingController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Regenerate(c echo.Context) error
	Tasks(c echo.Context) error
	Export(c echo.Context) error
	Preview(c echo.Context) error
}

package controllerImp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"farmcare/entities"
	"farmcare/pkg/apperror"
	"farmcare/pkg/clock"
	"farmcare/pkg/middleware"
	"farmcare/pkg/planting/service"
	"farmcare/pkg/schedule"
	schedCtrl "farmcare/pkg/schedule/controllerImp"
)

type PlantingCtrl struct {
	svc service.PlantingService
	loc *time.Location
}

func New(svc service.PlantingService, loc *time.Location) *PlantingCtrl {
	return &PlantingCtrl{svc: svc, loc: loc}
}

// flexString accepts a JSON string or number; form amounts arrive as either.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = flexString(n.String())
	return nil
}

type createReq struct {
	PlantName        string     `json:"plant_name"`
	PlantingDate     string     `json:"planting_date"`
	HarvestDate      string     `json:"harvest_date"`
	SoilType         string     `json:"soil_type"`
	SoilPH           *float64   `json:"soil_ph"`
	Humidity         string     `json:"humidity"`
	Temperature      string     `json:"temperature"`
	Altitude         string     `json:"altitude"`
	Irrigation       string     `json:"irrigation"`
	SeedSource       string     `json:"seed_source"`
	WateringAmount   flexString `json:"watering_amount"`
	WateringUnit     string     `json:"watering_unit"`
	FertilizerType   string     `json:"fertilizer_type"`
	FertilizerAmount flexString `json:"fertilizer_amount"`
	FertilizerUnit   string     `json:"fertilizer_unit"`
}

func (h *PlantingCtrl) bind(c echo.Context) (*entities.PlantingRecord, error) {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return nil, apperror.BadRequest("bad json")
	}
	pd, err := clock.ParseDay(strings.TrimSpace(req.PlantingDate), h.loc)
	if err != nil {
		return nil, apperror.BadRequest("planting_date must be YYYY-MM-DD")
	}
	hd, err := clock.ParseDay(strings.TrimSpace(req.HarvestDate), h.loc)
	if err != nil {
		return nil, apperror.BadRequest("harvest_date must be YYYY-MM-DD")
	}
	return &entities.PlantingRecord{
		UserID:           middleware.UserID(c),
		PlantName:        strings.TrimSpace(req.PlantName),
		PlantedOn:        pd,
		HarvestOn:        hd,
		SoilType:         req.SoilType,
		SoilPH:           req.SoilPH,
		Humidity:         req.Humidity,
		Temperature:      req.Temperature,
		Altitude:         req.Altitude,
		Irrigation:       req.Irrigation,
		SeedSource:       req.SeedSource,
		WateringAmount:   string(req.WateringAmount),
		WateringUnit:     req.WateringUnit,
		FertilizerType:   req.FertilizerType,
		FertilizerAmount: string(req.FertilizerAmount),
		FertilizerUnit:   req.FertilizerUnit,
	}, nil
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("bad planting id")
	}
	return uint(id), nil
}

func (h *PlantingCtrl) Create(c echo.Context) error {
	p, err := h.bind(c)
	if err != nil {
		return apperror.JSON(c, err)
	}
	reg, err := h.svc.Register(p)
	var pe *schedule.PersistenceError
	if errors.As(err, &pe) && reg != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"error":     pe.Error(),
			"retryable": pe.Retryable(),
			"planting":  reg.Planting,
			"retry":     fmt.Sprintf("POST /plantings/%d/schedule", reg.Planting.ID),
		})
	}
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, reg)
}

func (h *PlantingCtrl) List(c echo.Context) error {
	out, err := h.svc.List(middleware.UserID(c))
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"plantings": out})
}

func (h *PlantingCtrl) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apperror.JSON(c, err)
	}
	p, err := h.svc.Get(id, middleware.UserID(c))
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantingCtrl) Regenerate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apperror.JSON(c, err)
	}
	reg, err := h.svc.Regenerate(id, middleware.UserID(c))
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, reg)
}

func (h *PlantingCtrl) Tasks(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apperror.JSON(c, err)
	}
	views, err := h.svc.Tasks(id, middleware.UserID(c))
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, schedCtrl.Grouped(views))
}

func (h *PlantingCtrl) Export(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return apperror.JSON(c, err)
	}
	var buf bytes.Buffer
	if err := h.svc.ExportXLSX(id, middleware.UserID(c), &buf); err != nil {
		return apperror.JSON(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="planting-%d-schedule.xlsx"`, id))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *PlantingCtrl) Preview(c echo.Context) error {
	p, err := h.bind(c)
	if err != nil {
		return apperror.JSON(c, err)
	}
	out, err := h.svc.Preview(p)
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

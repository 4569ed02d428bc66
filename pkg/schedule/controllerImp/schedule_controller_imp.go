package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmcare/pkg/apperror"
	"farmcare/pkg/clock"
	"farmcare/pkg/middleware"
	"farmcare/pkg/schedule"
	"farmcare/pkg/schedule/service"
)

type SchedCtrl struct {
	svc service.ScheduleService
	loc *time.Location
}

func New(svc service.ScheduleService, loc *time.Location) *SchedCtrl {
	return &SchedCtrl{svc: svc, loc: loc}
}

// List answers GET /tasks?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *SchedCtrl) List(c echo.Context) error {
	uid := middleware.UserID(c)
	var from, to time.Time
	var err error
	if s := c.QueryParam("from"); s != "" {
		if from, err = clock.ParseDay(s, h.loc); err != nil {
			return apperror.JSON(c, apperror.BadRequest("bad from date"))
		}
	}
	if s := c.QueryParam("to"); s != "" {
		if to, err = clock.ParseDay(s, h.loc); err != nil {
			return apperror.JSON(c, apperror.BadRequest("bad to date"))
		}
	}
	out, err := h.svc.ForUser(uid, from, to)
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, Grouped(out))
}

func (h *SchedCtrl) Complete(c echo.Context) error {
	uid := middleware.UserID(c)
	tid, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
	if err != nil {
		return apperror.JSON(c, apperror.BadRequest("bad task id"))
	}
	res, err := h.svc.Complete(uint(tid), uid)
	if err != nil {
		return apperror.JSON(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Grouped is the task list payload shared by the task endpoints.
func Grouped(views []service.TaskView) map[string]any {
	return map[string]any{
		"tasks":   views,
		"buckets": schedule.Group(views, func(v service.TaskView) schedule.State { return v.State }),
	}
}

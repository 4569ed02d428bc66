package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmcare/pkg/clock"
)

type check struct {
	OK     bool   `json:"ok"`
	Err    string `json:"err,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

type HealthCtrl struct {
	db      *gorm.DB
	rules   int
	clk     clock.Clock
	loc     *time.Location
	started time.Time
}

// NewHealthCtrl reports on the database and the loaded rule table.
func NewHealthCtrl(db *gorm.DB, rules int, clk clock.Clock, loc *time.Location) *HealthCtrl {
	if loc == nil {
		loc = time.UTC
	}
	return &HealthCtrl{db: db, rules: rules, clk: clk, loc: loc, started: clk.Now()}
}

func (h *HealthCtrl) pingDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.pingDB(ctx)
	rules := check{OK: h.rules > 0, Detail: map[string]int{"count": h.rules}}
	if !rules.OK {
		rules.Err = "no adjustment rules loaded"
	}

	status := http.StatusOK
	if !db.OK || !rules.OK {
		status = http.StatusServiceUnavailable
	}
	now := h.clk.Now()
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": status == http.StatusOK},
		"uptime_sec": int(now.Sub(h.started).Seconds()),
		"checks":     map[string]check{"database": db, "rules": rules},
		"today":      clock.Today(h.clk, h.loc).Format(clock.DateLayout),
		"time":       now.In(h.loc).Format(time.RFC3339),
	})
}

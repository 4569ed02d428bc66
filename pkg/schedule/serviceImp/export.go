package serviceImp

import (
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"farmcare/pkg/clock"
	"farmcare/pkg/schedule"
)

const exportSheet = "Schedule"

var exportHeader = []any{"Date", "Activity", "Fertilizer", "State", "Completed At"}

// ExportXLSX writes a planting's schedule to a single-sheet workbook.
func (s *schedSvc) ExportXLSX(plantingID uint, uid string, w io.Writer) error {
	views, err := s.ForPlanting(plantingID, uid)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, v := range views {
		activity, fertilizer := v.Activity, ""
		if schedule.IsFertilizing(v.Activity) {
			activity = "fertilizing"
			_, fertilizer, _ = strings.Cut(v.Activity, ":")
		}
		done := ""
		if v.CompletedAt != nil {
			done = v.CompletedAt.In(s.loc).Format("2006-01-02 15:04")
		}
		row := []any{v.Date.UTC().Format(clock.DateLayout), activity, fertilizer, string(v.State), done}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	_ = f.SetColWidth(exportSheet, "A", "E", 16)
	_, err = f.WriteTo(w)
	return err
}

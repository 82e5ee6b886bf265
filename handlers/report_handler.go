package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/KENOx7/qayib/database"
)

type ReportHandler struct{}

func NewReportHandler() *ReportHandler { return &ReportHandler{} }

const exportSheet = "Davamiyyət"

// GET /api/admin/export — the counts grid as an xlsx workbook, one row
// per student, one column per subject. Same numbers as /api/students,
// nothing more.
func (h *ReportHandler) Export(c echo.Context) error {
	students, subjects, counts, err := loadMatrix(database.DB)
	if err != nil {
		log.Printf("export query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("closing workbook: %v", err)
		}
	}()
	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		log.Printf("export sheet failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		log.Printf("dropping default sheet: %v", err)
	}

	setCell := func(col, row int, v any) {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return
		}
		_ = f.SetCellValue(exportSheet, cell, v)
	}

	setCell(1, 1, "ID")
	setCell(2, 1, "Şagird")
	for j, sub := range subjects {
		setCell(3+j, 1, sub.Name)
	}
	for i, s := range students {
		row := i + 2
		setCell(1, row, s.ID)
		setCell(2, row, s.Name)
		for j, sub := range subjects {
			setCell(3+j, row, counts[cellKey{s.ID, sub.ID}])
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("export write failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="davamiyyet.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

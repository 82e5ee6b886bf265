package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/models"
)

// AdminHandler backs the admin drill-down UI: plain roster meta, raw
// count rows and per-cell absence history.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler { return &AdminHandler{} }

// GET /api/admin/meta
func (h *AdminHandler) Meta(c echo.Context) error {
	var students []models.Student
	if err := database.DB.Order("id").Find(&students).Error; err != nil {
		log.Printf("students query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	var subjects []models.Subject
	if err := database.DB.Order("id").Find(&subjects).Error; err != nil {
		log.Printf("subjects query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"students": students, "subjects": subjects})
}

// GET /api/admin/counts — non-zero cells only; the client zero-fills.
func (h *AdminHandler) Counts(c echo.Context) error {
	rows, err := loadCounts(database.DB)
	if err != nil {
		log.Printf("counts query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, rows)
}

type absenceDetailRow struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy *uint     `json:"created_by"`
}

// GET /api/admin/absences/:student_id/:subject_id
func (h *AdminHandler) AbsenceDetail(c echo.Context) error {
	studentID := pathID(c, "student_id")
	subjectID := pathID(c, "subject_id")
	if studentID == 0 || subjectID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "bad student or subject id"})
	}

	var rows []absenceDetailRow
	err := database.DB.Model(&models.Absence{}).
		Select("id, date, note, created_at, created_by").
		Where("student_id = ? AND subject_id = ?", studentID, subjectID).
		Order("date DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("absence detail query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	if rows == nil {
		rows = []absenceDetailRow{}
	}
	return c.JSON(http.StatusOK, rows)
}

type adminAbsenceReq struct {
	StudentID uint   `json:"student_id" validate:"required,gt=0"`
	SubjectID uint   `json:"subject_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`
	Note      string `json:"note"`
}

// POST /api/admin/absences — single-row variant used by the drill-down modal.
func (h *AdminHandler) CreateAbsence(c echo.Context) error {
	var req adminAbsenceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "provide student_id, subject_id and date"})
	}
	if !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "date must be YYYY-MM-DD"})
	}

	a := models.Absence{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Date:      req.Date,
		Note:      strings.TrimSpace(req.Note),
		CreatedBy: actorID(c),
	}
	if err := database.DB.Create(&a).Error; err != nil {
		log.Printf("absence insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "storage error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

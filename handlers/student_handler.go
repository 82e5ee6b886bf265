package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type subjectCount struct {
	SubjectID   uint   `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Count       int64  `json:"count"`
}

type studentWithCounts struct {
	ID     uint           `json:"id"`
	Name   string         `json:"name"`
	Counts []subjectCount `json:"counts"`
}

// GET /api/students — the public grid: every student crossed with every
// subject, zero-filled where nothing was recorded.
func (h *StudentHandler) List(c echo.Context) error {
	students, subjects, counts, err := loadMatrix(database.DB)
	if err != nil {
		log.Printf("counts matrix query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}

	result := make([]studentWithCounts, 0, len(students))
	for _, s := range students {
		row := studentWithCounts{ID: s.ID, Name: s.Name, Counts: make([]subjectCount, 0, len(subjects))}
		for _, sub := range subjects {
			row.Counts = append(row.Counts, subjectCount{
				SubjectID:   sub.ID,
				SubjectName: sub.Name,
				Count:       counts[cellKey{s.ID, sub.ID}],
			})
		}
		result = append(result, row)
	}
	return c.JSON(http.StatusOK, map[string]any{"students": result, "subjects": subjects})
}

// GET /api/student/:id
func (h *StudentHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "bad student id"})
	}
	var s models.Student
	if err := database.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "not found"})
		}
		log.Printf("student lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, s)
}

type subjectDetail struct {
	SubjectName string   `json:"subject_name"`
	Dates       []string `json:"dates"`
}

// GET /api/student/:id/details — dates per subject, newest first.
func (h *StudentHandler) Details(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "bad student id"})
	}

	type row struct {
		SubjectID   uint
		SubjectName string
		Date        string
	}
	var rows []row
	err := database.DB.Table("absences AS a").
		Select("a.subject_id, s.name AS subject_name, a.date").
		Joins("JOIN subjects s ON s.id = a.subject_id").
		Where("a.student_id = ?", id).
		Order("a.date DESC, a.id DESC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("student details query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}

	details := make(map[uint]*subjectDetail)
	for _, r := range rows {
		d, ok := details[r.SubjectID]
		if !ok {
			d = &subjectDetail{SubjectName: r.SubjectName}
			details[r.SubjectID] = d
		}
		d.Dates = append(d.Dates, r.Date)
	}
	return c.JSON(http.StatusOK, map[string]any{"student_id": id, "details": details})
}

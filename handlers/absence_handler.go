package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/models"
)

type AbsenceHandler struct{}

func NewAbsenceHandler() *AbsenceHandler { return &AbsenceHandler{} }

type addAbsenceReq struct {
	StudentID  uint   `json:"studentId" validate:"required,gt=0"`
	SubjectIDs []uint `json:"subjectIds" validate:"required,min=1,dive,gt=0"`
	Date       string `json:"date"`
	Note       string `json:"note"`
}

// POST /api/absence — one row per subject id, all on the same date.
// The batch runs in a single transaction: either every subject gets its
// row or none does.
func (h *AbsenceHandler) Create(c echo.Context) error {
	var req addAbsenceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "provide studentId and subjectIds array"})
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = today()
	} else if !validDate(date) {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "date must be YYYY-MM-DD"})
	}

	actor := actorID(c)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, subID := range req.SubjectIDs {
			a := models.Absence{
				StudentID: req.StudentID,
				SubjectID: subID,
				Date:      date,
				Note:      strings.TrimSpace(req.Note),
				CreatedBy: actor,
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("absence insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "storage error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "date": date})
}

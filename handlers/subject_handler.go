package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/models"
)

type SubjectHandler struct{}

func NewSubjectHandler() *SubjectHandler { return &SubjectHandler{} }

// GET /api/subjects
func (h *SubjectHandler) List(c echo.Context) error {
	var subjects []models.Subject
	if err := database.DB.Order("id").Find(&subjects).Error; err != nil {
		log.Printf("subjects query failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, subjects)
}

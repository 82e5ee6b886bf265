package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/KENOx7/qayib/middlewares"
)

const dateLayout = "2006-01-02"

// pathID parses a positive integer path param; 0 means invalid.
func pathID(c echo.Context, name string) uint {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		return 0
	}
	return uint(n)
}

// validDate reports whether s is a real YYYY-MM-DD calendar date.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func today() string {
	return time.Now().UTC().Format(dateLayout)
}

// actorID returns the admin id stashed by the session middleware,
// or nil when the route ran unauthenticated.
func actorID(c echo.Context) *uint {
	if id, ok := c.Get(middlewares.CtxUserID).(uint); ok && id > 0 {
		return &id
	}
	return nil
}

/* ====================== Echo validator ====================== */

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}
	return nil
}

/* ====================== Health ====================== */

// Health serves GET /health for the reverse proxy check.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

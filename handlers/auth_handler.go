package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/middlewares"
	"github.com/KENOx7/qayib/models"
	"github.com/KENOx7/qayib/session"
)

type AuthHandler struct {
	Sessions session.Store
	TTL      time.Duration
}

func NewAuthHandler(store session.Store, ttl time.Duration) *AuthHandler {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	return &AuthHandler{Sessions: store, TTL: ttl}
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "invalid payload"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "enter username and password"})
	}

	// Unknown user and wrong password are told apart here but never in
	// the response body.
	var u models.User
	if err := database.DB.Where("username = ?", req.Username).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("login query failed: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "internal error"})
		}
		return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid credentials"})
	}

	sid, err := h.Sessions.Create(c.Request().Context(), session.Record{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
	if err != nil {
		log.Printf("session create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "internal error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middlewares.CookieName,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(h.TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "logged in"})
}

// POST /api/logout — always succeeds, even with no session to destroy.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middlewares.CookieName); err == nil && cookie.Value != "" {
		if err := h.Sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			log.Printf("session delete failed: %v", err)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     middlewares.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

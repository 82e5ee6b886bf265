package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/handlers"
	"github.com/KENOx7/qayib/middlewares"
	"github.com/KENOx7/qayib/routes"
	"github.com/KENOx7/qayib/session"
)

// setupDB points the global database.DB at a fresh seeded in-memory
// sqlite and returns it.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	database.DB = db
	return db
}

func newApp(store session.Store) *echo.Echo {
	e := echo.New()
	e.Validator = handlers.NewValidator()
	routes.Register(e, store, time.Hour)
	return e
}

// setupApp builds a seeded app with an in-memory session store.
func setupApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	return newApp(session.NewMemoryStore(time.Hour)), db
}

func doJSON(e *echo.Echo, method, path string, body []byte, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		buf.Write(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middlewares.CookieName {
			return c
		}
	}
	return nil
}

// loginAdmin logs in with the seeded default credentials.
func loginAdmin(t *testing.T, e *echo.Echo) *http.Cookie {
	t.Helper()
	body := []byte(`{"username":"admin","password":"admin123"}`)
	rec := doJSON(e, http.MethodPost, "/api/login", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	return cookie
}

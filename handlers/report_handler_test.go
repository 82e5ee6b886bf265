package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KENOx7/qayib/models"
)

func TestExport_CountsWorkbook(t *testing.T) {
	e, db := setupApp(t)
	cookie := loginAdmin(t, e)

	require.NoError(t, db.Create(&models.Absence{StudentID: 1, SubjectID: 1, Date: "2024-05-01"}).Error)

	rec := doJSON(e, http.MethodGet, "/api/admin/export", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "davamiyyet.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Davamiyyət", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", v)

	v, err = f.GetCellValue("Davamiyyət", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Şagird 1", v)

	// C2 = student 1 × first subject, the one absence we created
	v, err = f.GetCellValue("Davamiyyət", "C2")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestExport_RequiresAdmin(t *testing.T) {
	e, _ := setupApp(t)

	rec := doJSON(e, http.MethodGet, "/api/admin/export", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

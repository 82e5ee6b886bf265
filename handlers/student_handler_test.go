package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KENOx7/qayib/models"
)

func TestStudentsMatrix_ZeroFilled(t *testing.T) {
	e, _ := setupApp(t)

	rec := doJSON(e, http.MethodGet, "/api/students", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var m matrixResp
	decode(t, rec, &m)
	require.Len(t, m.Students, 26)
	require.Len(t, m.Subjects, 6)

	// every cell present, every count zero on a fresh store
	for _, s := range m.Students {
		require.Len(t, s.Counts, 6, "student %d", s.ID)
		for _, c := range s.Counts {
			assert.EqualValues(t, 0, c.Count)
			assert.NotEmpty(t, c.SubjectName)
		}
	}
	assert.Equal(t, "Şagird 1", m.Students[0].Name)
	assert.Equal(t, "Riyaziyyat", m.Subjects[0].Name)
}

func TestStudentDetails_DatesDescendingPerSubject(t *testing.T) {
	e, db := setupApp(t)

	for _, d := range []string{"2024-01-01", "2024-03-01"} {
		require.NoError(t, db.Create(&models.Absence{StudentID: 4, SubjectID: 2, Date: d}).Error)
	}

	rec := doJSON(e, http.MethodGet, "/api/student/4/details", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Details map[string]struct {
			SubjectName string   `json:"subject_name"`
			Dates       []string `json:"dates"`
		} `json:"details"`
	}
	decode(t, rec, &resp)
	require.Contains(t, resp.Details, "2")
	assert.Equal(t, "Fizika", resp.Details["2"].SubjectName)
	assert.Equal(t, []string{"2024-03-01", "2024-01-01"}, resp.Details["2"].Dates)
}

func TestStudentDetails_BadID(t *testing.T) {
	e, _ := setupApp(t)

	rec := doJSON(e, http.MethodGet, "/api/student/abc/details", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentGet(t *testing.T) {
	e, _ := setupApp(t)

	rec := doJSON(e, http.MethodGet, "/api/student/1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var s models.Student
	decode(t, rec, &s)
	assert.EqualValues(t, 1, s.ID)
	assert.Equal(t, "Şagird 1", s.Name)

	rec = doJSON(e, http.MethodGet, "/api/student/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubjectsList(t *testing.T) {
	e, _ := setupApp(t)

	rec := doJSON(e, http.MethodGet, "/api/subjects", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var subjects []models.Subject
	decode(t, rec, &subjects)
	require.Len(t, subjects, 6)
	assert.Equal(t, "Riyaziyyat", subjects[0].Name)
	assert.Equal(t, "İnformatika", subjects[5].Name)
}

func TestAdminMetaAndCounts(t *testing.T) {
	e, db := setupApp(t)
	cookie := loginAdmin(t, e)

	rec := doJSON(e, http.MethodGet, "/api/admin/meta", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var meta struct {
		Students []models.Student `json:"students"`
		Subjects []models.Subject `json:"subjects"`
	}
	decode(t, rec, &meta)
	assert.Len(t, meta.Students, 26)
	assert.Len(t, meta.Subjects, 6)

	// counts endpoint returns only non-zero cells
	rec = doJSON(e, http.MethodGet, "/api/admin/counts", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var counts []struct {
		StudentID uint  `json:"student_id"`
		SubjectID uint  `json:"subject_id"`
		Cnt       int64 `json:"cnt"`
	}
	decode(t, rec, &counts)
	assert.Empty(t, counts)

	require.NoError(t, db.Create(&models.Absence{StudentID: 2, SubjectID: 3, Date: "2024-05-01"}).Error)
	require.NoError(t, db.Create(&models.Absence{StudentID: 2, SubjectID: 3, Date: "2024-05-01"}).Error)

	rec = doJSON(e, http.MethodGet, "/api/admin/counts", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	counts = counts[:0]
	decode(t, rec, &counts)
	require.Len(t, counts, 1)
	assert.EqualValues(t, 2, counts[0].StudentID)
	assert.EqualValues(t, 3, counts[0].SubjectID)
	// duplicate rows for the same date both count
	assert.EqualValues(t, 2, counts[0].Cnt)
}

package handlers

import (
	"gorm.io/gorm"

	"github.com/KENOx7/qayib/models"
)

// countRow is one non-zero cell of the grouped-count query.
type countRow struct {
	StudentID uint  `json:"student_id"`
	SubjectID uint  `json:"subject_id"`
	Cnt       int64 `json:"cnt"`
}

// cellKey is the composite (student, subject) key for count lookups.
type cellKey struct {
	StudentID uint
	SubjectID uint
}

func loadCounts(db *gorm.DB) ([]countRow, error) {
	var rows []countRow
	err := db.Model(&models.Absence{}).
		Select("student_id, subject_id, COUNT(*) AS cnt").
		Group("student_id").
		Group("subject_id").
		Scan(&rows).Error
	return rows, err
}

// loadMatrix fetches the full roster plus the count of every non-empty
// cell. The grouped query only returns cells with absences; callers
// default everything else to zero.
func loadMatrix(db *gorm.DB) ([]models.Student, []models.Subject, map[cellKey]int64, error) {
	var students []models.Student
	if err := db.Order("id").Find(&students).Error; err != nil {
		return nil, nil, nil, err
	}
	var subjects []models.Subject
	if err := db.Order("id").Find(&subjects).Error; err != nil {
		return nil, nil, nil, err
	}
	rows, err := loadCounts(db)
	if err != nil {
		return nil, nil, nil, err
	}
	counts := make(map[cellKey]int64, len(rows))
	for _, r := range rows {
		counts[cellKey{r.StudentID, r.SubjectID}] = r.Cnt
	}
	return students, subjects, counts, nil
}

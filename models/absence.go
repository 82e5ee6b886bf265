package models

import "time"

// Absence is one recorded miss of one subject's lesson on one date.
// Rows are append-only; duplicates for the same (student, subject, date)
// are allowed on purpose (double entry happens in real registers).
type Absence struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	SubjectID uint      `json:"subject_id" gorm:"index;not null"`
	Date      string    `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	Note      string    `json:"note" gorm:"type:text"`
	CreatedBy *uint     `json:"created_by"` // admin user id, nullable
	CreatedAt time.Time `json:"created_at"`
}

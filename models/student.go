package models

// Student rows are seeded once and never edited through the API.
type Student struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:120;not null"`
}

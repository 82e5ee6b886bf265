package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/KENOx7/qayib/models"
)

// Demo roster. Fənlər siyahısı — dəyişmək istəsən burda dəyiş.
var seedSubjects = []string{"Riyaziyyat", "Fizika", "Kimya", "Biologiya", "Tarix", "İnformatika"}

const (
	seedStudentCount     = 26
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Seed fills any empty table with the fixed demo data. The check is
// per table and only "is it empty": running against a populated store
// inserts nothing, clearing a table by hand re-triggers its seed.
func Seed(db *gorm.DB) error {
	var n int64

	if err := db.Model(&models.User{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Username:     DefaultAdminUsername,
			PasswordHash: string(hash),
			Role:         "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("seeded default admin: %s / %s", DefaultAdminUsername, DefaultAdminPassword)
	}

	if err := db.Model(&models.Subject{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		for _, name := range seedSubjects {
			if err := db.Create(&models.Subject{Name: name}).Error; err != nil {
				return err
			}
		}
		log.Printf("seeded %d subjects", len(seedSubjects))
	}

	if err := db.Model(&models.Student{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		for i := 1; i <= seedStudentCount; i++ {
			s := models.Student{Name: fmt.Sprintf("Şagird %d", i)}
			if err := db.Create(&s).Error; err != nil {
				return err
			}
		}
		log.Printf("seeded %d students", seedStudentCount)
	}

	return nil
}

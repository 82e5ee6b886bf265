// scripts/create_admin.go
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/KENOx7/qayib/config"
	"github.com/KENOx7/qayib/database"
	"github.com/KENOx7/qayib/models"
)

// Creates an extra admin account. Username/password come from
// ADMIN_USERNAME / ADMIN_PASSWORD, defaulting to admin2 / change-me.
func main() {
	cfg := config.Load()
	database.Connect(cfg)

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin2"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me"
	}

	var existing models.User
	err := database.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		fmt.Println("admin user already exists with username:", username)
		os.Exit(0)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created:", username)
	fmt.Println("password:", password, "(plain, remember to change later!)")
}

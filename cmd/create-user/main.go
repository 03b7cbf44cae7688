// Command create-user creates an account with a random username and password for local testing.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"juggle-backend/internal/config"
	"juggle-backend/internal/database"
	"juggle-backend/internal/model"
	"juggle-backend/internal/utilities"
)

// generateRandomString creates a random hex string of length 2n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueUsername tries until a unique username is found
func generateUniqueUsername(db *gorm.DB, prefix string) string {
	for {
		username := prefix + "_" + generateRandomString(4)
		var count int64
		db.Model(&model.User{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			return username
		}
	}
}

func main() {
	prefix := flag.String("prefix", "user", "Username prefix")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.GetMainDB(cfg.Database)
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}
	defer db.Close()

	username := generateUniqueUsername(db.DB, *prefix)
	password := generateRandomString(8)

	hashedPassword, err := utilities.HashPassword(password)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	user := model.User{
		Username:  username,
		Password:  hashedPassword,
		FirstName: "Test",
		LastName:  "User",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("failed to create user: ", err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("User credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")
}

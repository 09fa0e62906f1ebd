package helper

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"backend-queue/internal/config"
)

// SeedAdminIfNeeded creates the initial admin account from env vars when
// the admins table is empty. Missing env vars only warn, so a fresh
// checkout still boots.
func SeedAdminIfNeeded() {
	var count int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		log.Println("Failed to check admins:", err)
		return
	}
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("Admin not seeded: ADMIN_USERNAME/ADMIN_PASSWORD missing in env")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	if _, err := config.DB.Exec(
		"INSERT INTO admins (username, password) VALUES (?, ?)", username, string(hashed),
	); err != nil {
		log.Println("Failed to seed admin:", err)
		return
	}

	log.Println("Seeded initial admin")
}

package config

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

func InitDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "smart_queue"),
	)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err := DB.Ping(); err != nil {
		log.Fatal("Database not reachable:", err)
	}

	if err := ensureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	log.Println("MySQL connected")
}

func CloseDB() {
	if DB != nil {
		_ = DB.Close()
	}
}

func ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS queue_tokens (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			token_number BIGINT NOT NULL UNIQUE,
			service_type VARCHAR(100) NOT NULL,
			status ENUM('waiting','serving','served') NOT NULL DEFAULT 'waiting',
			assigned_service_time DOUBLE NULL,
			created_at DATETIME(3) NOT NULL,
			served_at DATETIME(3) NULL,
			INDEX idx_status_number (status, token_number),
			INDEX idx_served_at (served_at)
		)`,
		`CREATE TABLE IF NOT EXISTS service_times (
			service_type VARCHAR(100) PRIMARY KEY,
			estimated_minutes DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admins (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

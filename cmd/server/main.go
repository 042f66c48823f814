package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"log"
	"math/big"
	"net/http"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"stocktrack/internal/api"
	"stocktrack/internal/config"
	"stocktrack/internal/db"
	"stocktrack/internal/model"
	"stocktrack/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	if err := ensureAdmin(ctx, database); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	jwtSecret, err := store.GetJWTSecret(ctx, database)
	if err != nil {
		log.Fatalf("Failed to load JWT secret: %v", err)
	}

	handler := api.NewRouter(database, jwtSecret, cfg)

	fmt.Printf("Server listening on %s\n", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// ensureAdmin creates the initial admin account with a generated password
// when the users table is empty, and prints the credentials once.
func ensureAdmin(ctx context.Context, database *sql.DB) error {
	users, err := store.ListUsers(ctx, database)
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	password, err := generatePassword(16)
	if err != nil {
		return fmt.Errorf("generating password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if _, err := store.CreateUser(ctx, database, "admin", string(hash), model.RoleAdmin, nil); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	fmt.Println("Admin account created:")
	fmt.Println("  Username: admin")
	fmt.Printf("  Password: %s\n", password)
	fmt.Println()
	fmt.Println("Save this password, it cannot be recovered.")
	fmt.Println("The admin can change it after logging in.")
	return nil
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}

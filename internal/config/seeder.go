package config

import (
	"fmt"
	"log"
	"time"

	"taskeasy/internal/adapters/persistence/models"
	"taskeasy/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedUsers builds the fixed identity table. Passwords are hashed at
// startup; this is dev seed data, not an account-management flow — the
// system has no signup, the set is immutable for the process lifetime.
func SeedUsers() ([]*models.User, error) {
	seeds := []struct {
		id       uint
		username string
		password string
	}{
		{1, "kokabmedia", getEnv("SEED_PASSWORD_1", "password")},
		{2, "ranga", getEnv("SEED_PASSWORD_2", "password")},
	}

	users := make([]*models.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := password.Hash(s.password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", s.username, err)
		}
		users = append(users, &models.User{
			ID:       s.id,
			Username: s.username,
			Password: hash,
			Roles:    "ROLE_USER_2",
			IsActive: true,
		})
	}
	return users, nil
}

// SeedTodos builds the sample todo list for the seed users
func SeedTodos() []*models.Todo {
	due := time.Now().AddDate(0, 0, 14)
	return []*models.Todo{
		{Username: "kokabmedia", Description: "Learn Go", TargetDate: due},
		{Username: "kokabmedia", Description: "Learn GORM", TargetDate: due.AddDate(0, 0, 7)},
		{Username: "kokabmedia", Description: "Learn Microservices", TargetDate: due.AddDate(0, 0, 14)},
	}
}

// Seeder populates the mysql backend with the same fixed data the memory
// backend is constructed from
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders; existing rows are left alone
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedUsers(); err != nil {
		return err
	}
	if err := s.seedTodos(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

func (s *Seeder) seedUsers() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users, err := SeedUsers()
	if err != nil {
		return err
	}
	return s.db.Create(users).Error
}

func (s *Seeder) seedTodos() error {
	var count int64
	if err := s.db.Model(&models.Todo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.db.Create(SeedTodos()).Error
}

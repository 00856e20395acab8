package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a known identity. The table is seeded once at process
// start; this system has no signup or profile-edit flow.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Roles     string    `gorm:"size:255" json:"roles"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// RoleList returns the role labels as a slice
func (u *User) RoleList() []string {
	if u.Roles == "" {
		return nil
	}
	return strings.Split(u.Roles, ",")
}

// SetRoles stores the role labels from a slice
func (u *User) SetRoles(roles []string) {
	u.Roles = strings.Join(roles, ",")
}

// Todo represents a todo item owned by a user
type Todo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"index;size:50;not null" json:"username"`
	Description string    `gorm:"size:255;not null" json:"description"`
	TargetDate  time.Time `json:"target_date"`
	IsDone      bool      `gorm:"default:false" json:"is_done"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Todo) TableName() string {
	return "todos"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Todo{},
	)
}

package model

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email        *string   `gorm:"type:varchar(100);uniqueIndex:idx_email" json:"email"`
	Phone        *string   `gorm:"type:varchar(20);uniqueIndex:idx_phone" json:"phone"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Nickname     string    `gorm:"type:varchar(50)" json:"nickname"`
	Avatar       string    `gorm:"type:varchar(255)" json:"avatar"`
	Bio          string    `gorm:"type:text" json:"bio"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	IsVerified   bool      `gorm:"not null" json:"is_verified"`
	Points       int       `gorm:"not null;default:0;index:idx_points" json:"points"`
	Level        int       `gorm:"not null;default:1" json:"level"`
	CreatedAt    time.Time `gorm:"index:idx_user_created" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

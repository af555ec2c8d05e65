package model

import (
	"time"
)

type Challenge struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"type:varchar(200);not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Type         string     `gorm:"type:varchar(20);not null" json:"type"`
	RewardPoints int        `gorm:"not null;default:0" json:"reward_points"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
	StartAt      *time.Time `json:"start_at"`
	EndAt        *time.Time `json:"end_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Challenge) TableName() string {
	return "challenges"
}

type Achievement struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Icon         string    `gorm:"type:varchar(255)" json:"icon"`
	Condition    string    `gorm:"type:varchar(255)" json:"condition"`
	RewardPoints int       `gorm:"not null;default:0" json:"reward_points"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}

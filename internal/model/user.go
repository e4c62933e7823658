package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	Username    string         `json:"username" gorm:"unique;not null"`
	Password    string         `json:"-" gorm:"not null"`
	Admin       bool           `json:"admin" gorm:"not null"`
	Status      int            `json:"status" gorm:"default:1"` // 1: 正常, 2: 封禁, 3: 停用
	Credentials []Credential   `json:"-"`
}

package model

import "time"

// Credential 一条密码记录。Password 按原文存储，不做服务端加密，
// 记录仅归属单一用户，跨用户不可见。
type Credential struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"-"`
	Website   string    `json:"website"`
	Username  string    `json:"username"`
	Password  string    `json:"password" gorm:"type:text"`
	Notes     string    `json:"notes" gorm:"type:text"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

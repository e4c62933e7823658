package model

type Setting struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	Key       string `json:"key" gorm:"uniqueIndex;size:255;not null"`
	Value     string `json:"value" gorm:"type:text"`
	Desc      string `json:"desc" gorm:"type:text"`
	Sensitive bool   `json:"sensitive" gorm:"default:false"`
}

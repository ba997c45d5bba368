package model

import (
	"time"

	"gorm.io/gorm"
)

// 帖子颜色标签的可选值，默认红色
const (
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorYellow = "yellow"
	ColorPink   = "pink"
	ColorPurple = "purple"
)

// ValidColorCode 校验颜色标签是否在允许的集合内
func ValidColorCode(code string) bool {
	switch code {
	case ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorPink, ColorPurple:
		return true
	}
	return false
}

// Post 帖子模型
// AuthorID 为必填的作者外键，创建时由服务层从登录身份填充
// MentionedUserID 为可选的提及用户，软引用：解析失败时为NULL，不产生错误

type Post struct {
	ID              uint           `gorm:"primaryKey"`
	Content         string         `gorm:"type:text;not null;comment:帖子内容"`
	ColorCode       string         `gorm:"type:varchar(10);not null;default:'red';comment:颜色标签"`
	AuthorID        uint           `gorm:"not null;index;comment:作者ID"`
	MentionedUserID *uint          `gorm:"index;comment:被提及用户ID(可为空)"`
	CreatedAt       time.Time      `gorm:"index;comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (Post) TableName() string { return "post" }

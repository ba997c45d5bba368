package model

import (
	"time"

	"gorm.io/gorm"
)

// Comment 评论模型
// CommenterID 非空外键，创建时由服务层从登录身份填充，不接受客户端传入

type Comment struct {
	ID          uint           `gorm:"primaryKey"`
	Content     string         `gorm:"type:text;not null;comment:评论内容"`
	PostID      uint           `gorm:"not null;index;comment:帖子ID"`
	CommenterID uint           `gorm:"not null;index;comment:评论者ID"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Comment) TableName() string { return "comment" }

package model

import (
	"time"

	"gorm.io/gorm"
)

// 好友请求状态
const (
	RequestStatusPending = "pending"
)

// FriendRequest 好友请求（有方向：sender -> receiver）
// 不变量（在服务层与唯一索引共同保证）：
//   - sender != receiver
//   - 同一有序对(sender, receiver)最多存在一条pending记录

type FriendRequest struct {
	ID         uint           `gorm:"primaryKey"`
	SenderID   uint           `gorm:"not null;index;comment:发送者ID"`
	ReceiverID uint           `gorm:"not null;index;comment:接收者ID"`
	Status     string         `gorm:"type:varchar(32);not null;default:'pending';comment:请求状态"`
	CreatedAt  time.Time      `gorm:"comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"comment:更新时间"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (FriendRequest) TableName() string { return "friend_request" }

// Friendship 好友关系（无方向的二元关系）
// 存储时始终保证 UserAID < UserBID，配合唯一索引实现无序对唯一

type Friendship struct {
	ID        uint           `gorm:"primaryKey"`
	UserAID   uint           `gorm:"not null;uniqueIndex:idx_friend_pair;comment:较小的用户ID"`
	UserBID   uint           `gorm:"not null;uniqueIndex:idx_friend_pair;comment:较大的用户ID"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Friendship) TableName() string { return "friendship" }

// NormalizePair 将两个用户ID归一化为(小,大)的存储顺序
func NormalizePair(a, b uint) (uint, uint) {
	if a > b {
		return b, a
	}
	return a, b
}

package repository

import (
	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// FriendRepository 好友关系数据仓储
type FriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository 创建FriendRepository实例
func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// CreateRequest 创建好友请求
func (r *FriendRepository) CreateRequest(req *model.FriendRequest) error {
	return r.db.Create(req).Error
}

// GetRequestByID 根据ID获取好友请求
func (r *FriendRepository) GetRequestByID(id uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListSent 获取用户发出的全部好友请求
func (r *FriendRepository) ListSent(senderID uint) ([]*model.FriendRequest, error) {
	var reqs []*model.FriendRequest
	err := r.db.Where("sender_id = ?", senderID).Find(&reqs).Error
	return reqs, err
}

// ListReceived 获取用户收到的全部好友请求
func (r *FriendRepository) ListReceived(receiverID uint) ([]*model.FriendRequest, error) {
	var reqs []*model.FriendRequest
	err := r.db.Where("receiver_id = ?", receiverID).Find(&reqs).Error
	return reqs, err
}

// HasPendingRequest 检查有序对(sender, receiver)是否已有pending请求
func (r *FriendRepository) HasPendingRequest(senderID, receiverID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.FriendRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?",
			senderID, receiverID, model.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

// AreFriends 检查两个用户之间是否已存在好友关系
func (r *FriendRepository) AreFriends(a, b uint) (bool, error) {
	ua, ub := model.NormalizePair(a, b)
	var count int64
	err := r.db.Model(&model.Friendship{}).
		Where("user_a_id = ? AND user_b_id = ?", ua, ub).
		Count(&count).Error
	return count > 0, err
}

// AcceptRequest 接受好友请求：创建一条好友关系并删除请求，在同一事务内完成
func (r *FriendRepository) AcceptRequest(req *model.FriendRequest) error {
	ua, ub := model.NormalizePair(req.SenderID, req.ReceiverID)
	return r.db.Transaction(func(tx *gorm.DB) error {
		friendship := &model.Friendship{UserAID: ua, UserBID: ub}
		if err := tx.Create(friendship).Error; err != nil {
			return err
		}
		return tx.Delete(&model.FriendRequest{}, req.ID).Error
	})
}

// DeleteRequest 删除好友请求（拒绝时使用）
func (r *FriendRepository) DeleteRequest(id uint) error {
	return r.db.Delete(&model.FriendRequest{}, id).Error
}

// ListFriendships 获取用户的全部好友关系
func (r *FriendRepository) ListFriendships(userID uint) ([]*model.Friendship, error) {
	var friendships []*model.Friendship
	err := r.db.Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Find(&friendships).Error
	return friendships, err
}

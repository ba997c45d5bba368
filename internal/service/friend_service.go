package service

import (
	"errors"

	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// FriendService 好友关系服务
type FriendService struct {
	friendStore FriendStore
	userStore   UserStore
}

// NewFriendService 创建FriendService实例
func NewFriendService(friendStore FriendStore, userStore UserStore) *FriendService {
	return &FriendService{friendStore: friendStore, userStore: userStore}
}

// SendRequest 发送好友请求
// 不变量：不能向自己发送；同一有序对最多一条pending请求；已是好友时不允许再发
func (s *FriendService) SendRequest(senderID uint, targetIdentifier string) (*model.FriendRequest, error) {
	if senderID == 0 {
		return nil, ErrUnauthorized
	}
	target, err := resolveUser(s.userStore, targetIdentifier)
	if err != nil {
		return nil, err
	}
	if target.ID == senderID {
		return nil, validationErr("cannot send a friend request to yourself")
	}

	friends, err := s.friendStore.AreFriends(senderID, target.ID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, validationErr("already friends with user %d", target.ID)
	}

	pending, err := s.friendStore.HasPendingRequest(senderID, target.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, validationErr("a pending request to user %d already exists", target.ID)
	}

	req := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: target.ID,
		Status:     model.RequestStatusPending,
	}
	if err := s.friendStore.CreateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListSent 列出标识符对应用户发出的全部好友请求
func (s *FriendService) ListSent(identifier string) ([]*model.FriendRequest, error) {
	user, err := resolveUser(s.userStore, identifier)
	if err != nil {
		return nil, err
	}
	return s.friendStore.ListSent(user.ID)
}

// ListReceived 列出标识符对应用户收到的全部好友请求
func (s *FriendService) ListReceived(identifier string) ([]*model.FriendRequest, error) {
	user, err := resolveUser(s.userStore, identifier)
	if err != nil {
		return nil, err
	}
	return s.friendStore.ListReceived(user.ID)
}

// Accept 接受好友请求，仅接收者本人可操作
// 恰好创建一条好友关系并移除请求（仓储层保证在同一事务内）
func (s *FriendService) Accept(callerID, requestID uint) (*model.Friendship, error) {
	req, err := s.getRequest(requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != callerID {
		return nil, forbiddenErr("only the receiver can accept this request")
	}
	if err := s.friendStore.AcceptRequest(req); err != nil {
		return nil, err
	}

	ua, ub := model.NormalizePair(req.SenderID, req.ReceiverID)
	return &model.Friendship{UserAID: ua, UserBID: ub}, nil
}

// Reject 拒绝好友请求，仅接收者本人可操作
func (s *FriendService) Reject(callerID, requestID uint) error {
	req, err := s.getRequest(requestID)
	if err != nil {
		return err
	}
	if req.ReceiverID != callerID {
		return forbiddenErr("only the receiver can reject this request")
	}
	return s.friendStore.DeleteRequest(req.ID)
}

// ListFriends 列出用户的全部好友
func (s *FriendService) ListFriends(userID uint) ([]*model.User, error) {
	friendships, err := s.friendStore.ListFriendships(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		if f.UserAID == userID {
			ids = append(ids, f.UserBID)
		} else {
			ids = append(ids, f.UserAID)
		}
	}
	return s.userStore.GetByIDs(ids)
}

// getRequest 获取好友请求，不存在时返回NotFound
func (s *FriendService) getRequest(id uint) (*model.FriendRequest, error) {
	req, err := s.friendStore.GetRequestByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("friend request %d does not exist", id)
		}
		return nil, err
	}
	return req, nil
}

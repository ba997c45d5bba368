package service

import (
	"github.com/ctoRVC/RV-Connect/internal/model"
)

// 每种资源一个显式的仓储接口，服务层只依赖接口
// internal/repository 提供基于gorm的实现，测试使用内存实现

// UserStore 用户仓储接口
type UserStore interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByIDs(ids []uint) ([]*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetByUsernameOrEmail(identifier string) (*model.User, error)
	SearchByUsername(username string) ([]*model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

// PostStore 帖子仓储接口
type PostStore interface {
	Create(post *model.Post) error
	GetByID(id uint) (*model.Post, error)
	Update(post *model.Post) error
	Delete(id uint) error
	ListRecent(limit int) ([]*model.Post, error)
	ListByAuthor(authorID uint) ([]*model.Post, error)
	ListAll() ([]*model.Post, error)
}

// CommentStore 评论仓储接口
type CommentStore interface {
	Create(comment *model.Comment) error
	GetByID(id uint) (*model.Comment, error)
	ListByPost(postID uint) ([]*model.Comment, error)
	ListByCommenter(commenterID uint) ([]*model.Comment, error)
	Delete(id uint) error
}

// FriendStore 好友关系仓储接口
type FriendStore interface {
	CreateRequest(req *model.FriendRequest) error
	GetRequestByID(id uint) (*model.FriendRequest, error)
	ListSent(senderID uint) ([]*model.FriendRequest, error)
	ListReceived(receiverID uint) ([]*model.FriendRequest, error)
	HasPendingRequest(senderID, receiverID uint) (bool, error)
	AreFriends(a, b uint) (bool, error)
	AcceptRequest(req *model.FriendRequest) error
	DeleteRequest(id uint) error
	ListFriendships(userID uint) ([]*model.Friendship, error)
}

package service

import (
	"errors"
	"strings"

	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// CommentService 评论服务
type CommentService struct {
	commentStore CommentStore
	postStore    PostStore
	userStore    UserStore
}

// NewCommentService 创建CommentService实例
func NewCommentService(commentStore CommentStore, postStore PostStore, userStore UserStore) *CommentService {
	return &CommentService{commentStore: commentStore, postStore: postStore, userStore: userStore}
}

// Create 创建评论
// 评论者始终取登录身份，不接受客户端传入；未登录直接拒绝
func (s *CommentService) Create(commenterID, postID uint, content string) (*model.Comment, error) {
	if commenterID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationErr("content is required")
	}
	if _, err := s.postStore.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("post %d does not exist", postID)
		}
		return nil, err
	}

	comment := &model.Comment{
		Content:     content,
		PostID:      postID,
		CommenterID: commenterID,
	}
	if err := s.commentStore.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost 获取帖子下的全部评论
func (s *CommentService) ListByPost(postID uint) ([]*model.Comment, error) {
	if _, err := s.postStore.GetByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("post %d does not exist", postID)
		}
		return nil, err
	}
	return s.commentStore.ListByPost(postID)
}

// ListByCommenter 按用户名（精确匹配，区分大小写）列出该用户的全部评论
func (s *CommentService) ListByCommenter(username string) ([]*model.Comment, error) {
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("user %q does not exist", username)
		}
		return nil, err
	}
	return s.commentStore.ListByCommenter(user.ID)
}

// Delete 删除评论，仅评论作者本人可操作
// 非作者删除返回Forbidden，而不是静默忽略或404
func (s *CommentService) Delete(callerID, commentID uint) error {
	comment, err := s.commentStore.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("comment %d does not exist", commentID)
		}
		return err
	}
	if comment.CommenterID != callerID {
		return forbiddenErr("only the author can delete this comment")
	}
	return s.commentStore.Delete(commentID)
}

package service

import (
	"errors"
	"strings"

	"github.com/ctoRVC/RV-Connect/internal/model"
	"github.com/ctoRVC/RV-Connect/pkg/redis"

	"gorm.io/gorm"
)

// 不带过滤条件的帖子列表最多返回100条
const MaxPostListLimit = 100

// PostService 帖子服务
type PostService struct {
	postStore PostStore
	userStore UserStore
}

// NewPostService 创建PostService实例
func NewPostService(postStore PostStore, userStore UserStore) *PostService {
	return &PostService{postStore: postStore, userStore: userStore}
}

// Create 创建帖子
// 作者始终取登录身份，忽略客户端传入的任何作者字段（防止冒名发帖）
// mention 为可选的提及标识符（数值ID或用户名），解析失败时静默置空
func (s *PostService) Create(authorID uint, content, colorCode, mention string) (*model.Post, error) {
	if authorID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationErr("content is required")
	}
	if colorCode == "" {
		colorCode = model.ColorRed
	}
	if !model.ValidColorCode(colorCode) {
		return nil, validationErr("invalid color_code %q", colorCode)
	}

	post := &model.Post{
		Content:         content,
		ColorCode:       colorCode,
		AuthorID:        authorID,
		MentionedUserID: s.resolveMention(mention),
	}
	if err := s.postStore.Create(post); err != nil {
		return nil, err
	}

	// 信息流缓存失效（尽力而为）
	_ = redis.InvalidateFeed()

	return post, nil
}

// Get 根据ID获取帖子
func (s *PostService) Get(id uint) (*model.Post, error) {
	post, err := s.postStore.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("post %d does not exist", id)
		}
		return nil, err
	}
	return post, nil
}

// Update 更新帖子，仅作者本人可操作
// 传空串的字段保持不变；mention 重新走尽力而为的解析
func (s *PostService) Update(callerID, postID uint, content, colorCode, mention string) (*model.Post, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, forbiddenErr("only the author can update this post")
	}

	if strings.TrimSpace(content) != "" {
		post.Content = content
	}
	if colorCode != "" {
		if !model.ValidColorCode(colorCode) {
			return nil, validationErr("invalid color_code %q", colorCode)
		}
		post.ColorCode = colorCode
	}
	if mention != "" {
		post.MentionedUserID = s.resolveMention(mention)
	}

	if err := s.postStore.Update(post); err != nil {
		return nil, err
	}

	_ = redis.InvalidateFeed()

	return post, nil
}

// Delete 删除帖子，仅作者本人可操作；帖子下的评论一并删除
func (s *PostService) Delete(callerID, postID uint) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != callerID {
		return forbiddenErr("only the author can delete this post")
	}
	if err := s.postStore.Delete(postID); err != nil {
		return err
	}

	_ = redis.InvalidateFeed()

	return nil
}

// ListRecent 获取最新帖子，最多100条，按创建时间倒序（时间相同按ID倒序）
func (s *PostService) ListRecent(limit int) ([]*model.Post, error) {
	if limit <= 0 || limit > MaxPostListLimit {
		limit = MaxPostListLimit
	}
	return s.postStore.ListRecent(limit)
}

// ListByAuthor 按作者标识符（数值ID或用户名）列出其全部帖子
func (s *PostService) ListByAuthor(identifier string) ([]*model.Post, error) {
	author, err := resolveUser(s.userStore, identifier)
	if err != nil {
		return nil, err
	}
	return s.postStore.ListByAuthor(author.ID)
}

// resolveMention 尽力而为的提及解析：任何解析失败都降级为nil，绝不报错
func (s *PostService) resolveMention(mention string) *uint {
	if strings.TrimSpace(mention) == "" {
		return nil
	}
	user, err := resolveUser(s.userStore, mention)
	if err != nil {
		return nil
	}
	return &user.ID
}

package response

import (
	"net/http"

	"github.com/ctoRVC/RV-Connect/internal/model"

	"github.com/gin-gonic/gin"
)

// 时间字段的统一展示格式
const TimeLayout = "2006-01-02 15:04:05"

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`           // 业务状态码：0表示成功
	Message string      `json:"message"`        // 响应消息
	Data    interface{} `json:"data,omitempty"` // 响应数据
}

// Success 成功响应（200）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带自定义消息的成功响应（200）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// NoContent 删除成功响应（204）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应，HTTP状态码与业务码一致
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// UserInfo 用户信息（隐藏敏感字段）
type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// FilterUserInfo 过滤用户信息，隐藏密码哈希等敏感字段
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(TimeLayout),
		UpdatedAt: user.UpdatedAt.Format(TimeLayout),
	}
}

// FilterUserInfos 批量过滤用户信息
func FilterUserInfos(users []*model.User) []*UserInfo {
	infos := make([]*UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, FilterUserInfo(u))
	}
	return infos
}

// LoginResponse 登录响应
type LoginResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// PostInfo 帖子响应
type PostInfo struct {
	ID              uint   `json:"id"`
	Content         string `json:"content"`
	ColorCode       string `json:"color_code"`
	AuthorID        uint   `json:"author_id"`
	MentionedUserID *uint  `json:"mentioned_user_id,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// FilterPostInfo 过滤帖子信息
func FilterPostInfo(post *model.Post) *PostInfo {
	if post == nil {
		return nil
	}

	return &PostInfo{
		ID:              post.ID,
		Content:         post.Content,
		ColorCode:       post.ColorCode,
		AuthorID:        post.AuthorID,
		MentionedUserID: post.MentionedUserID,
		CreatedAt:       post.CreatedAt.Format(TimeLayout),
		UpdatedAt:       post.UpdatedAt.Format(TimeLayout),
	}
}

// FilterPostInfos 批量过滤帖子信息
func FilterPostInfos(posts []*model.Post) []*PostInfo {
	infos := make([]*PostInfo, 0, len(posts))
	for _, p := range posts {
		infos = append(infos, FilterPostInfo(p))
	}
	return infos
}

// CommentInfo 评论响应
type CommentInfo struct {
	ID          uint   `json:"id"`
	Content     string `json:"content"`
	PostID      uint   `json:"post_id"`
	CommenterID uint   `json:"commenter_id"`
	CreatedAt   string `json:"created_at"`
}

// FilterCommentInfo 过滤评论信息
func FilterCommentInfo(comment *model.Comment) *CommentInfo {
	if comment == nil {
		return nil
	}

	return &CommentInfo{
		ID:          comment.ID,
		Content:     comment.Content,
		PostID:      comment.PostID,
		CommenterID: comment.CommenterID,
		CreatedAt:   comment.CreatedAt.Format(TimeLayout),
	}
}

// FilterCommentInfos 批量过滤评论信息
func FilterCommentInfos(comments []*model.Comment) []*CommentInfo {
	infos := make([]*CommentInfo, 0, len(comments))
	for _, cm := range comments {
		infos = append(infos, FilterCommentInfo(cm))
	}
	return infos
}

// FriendRequestInfo 好友请求响应
type FriendRequestInfo struct {
	ID         uint   `json:"id"`
	SenderID   uint   `json:"sender_id"`
	ReceiverID uint   `json:"receiver_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// FilterFriendRequestInfo 过滤好友请求信息
func FilterFriendRequestInfo(req *model.FriendRequest) *FriendRequestInfo {
	if req == nil {
		return nil
	}

	return &FriendRequestInfo{
		ID:         req.ID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Status:     req.Status,
		CreatedAt:  req.CreatedAt.Format(TimeLayout),
	}
}

// FilterFriendRequestInfos 批量过滤好友请求信息
func FilterFriendRequestInfos(reqs []*model.FriendRequest) []*FriendRequestInfo {
	infos := make([]*FriendRequestInfo, 0, len(reqs))
	for _, r := range reqs {
		infos = append(infos, FilterFriendRequestInfo(r))
	}
	return infos
}

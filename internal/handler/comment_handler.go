package handler

import (
	"github.com/ctoRVC/RV-Connect/internal/service"
	"github.com/ctoRVC/RV-Connect/pkg/jwt"
	"github.com/ctoRVC/RV-Connect/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler 评论接口处理器
type CommentHandler struct {
	service *service.CommentService
}

// NewCommentHandler 创建CommentHandler实例
func NewCommentHandler(s *service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

// CreateComment 发表评论
// 评论者取自JWT身份，请求体中不接受评论者字段
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		response.BadRequest(c, "invalid post_id")
		return
	}

	type req struct {
		Content string `json:"content" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.Create(userID, postID, r.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "评论成功", response.FilterCommentInfo(comment))
}

// ListCommentsByPost 列出帖子下的评论
func (h *CommentHandler) ListCommentsByPost(c *gin.Context) {
	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		response.BadRequest(c, "invalid post_id")
		return
	}
	comments, err := h.service.ListByPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterCommentInfos(comments))
}

// ListCommentsByCommenter 按用户名列出该用户发表的评论
func (h *CommentHandler) ListCommentsByCommenter(c *gin.Context) {
	username := c.Param("username")
	comments, err := h.service.ListByCommenter(username)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterCommentInfos(comments))
}

// DeleteComment 删除评论（仅评论作者本人）
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	commentID, err := parseID(c.Param("comment_id"))
	if err != nil {
		response.BadRequest(c, "invalid comment_id")
		return
	}
	if err := h.service.Delete(userID, commentID); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

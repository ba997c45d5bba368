package handler

import (
	"strconv"

	"github.com/ctoRVC/RV-Connect/internal/service"
	"github.com/ctoRVC/RV-Connect/pkg/jwt"
	"github.com/ctoRVC/RV-Connect/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostHandler 帖子接口处理器
type PostHandler struct {
	service *service.PostService
}

// NewPostHandler 创建PostHandler实例
func NewPostHandler(s *service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

// CreatePost 发帖
// 作者取自JWT身份，请求体中不接受作者字段
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)

	type req struct {
		Content       string `json:"content" binding:"required"`
		ColorCode     string `json:"color_code"`
		MentionedUser string `json:"mentioned_user"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Create(userID, r.Content, r.ColorCode, r.MentionedUser)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "发帖成功", response.FilterPostInfo(post))
}

// GetPost 获取单个帖子
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		response.BadRequest(c, "invalid post_id")
		return
	}
	post, err := h.service.Get(postID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterPostInfo(post))
}

// UpdatePost 更新帖子（仅作者本人）
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		response.BadRequest(c, "invalid post_id")
		return
	}

	type req struct {
		Content       string `json:"content"`
		ColorCode     string `json:"color_code"`
		MentionedUser string `json:"mentioned_user"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Update(userID, postID, r.Content, r.ColorCode, r.MentionedUser)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, "更新成功", response.FilterPostInfo(post))
}

// DeletePost 删除帖子（仅作者本人）
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		response.BadRequest(c, "invalid post_id")
		return
	}
	if err := h.service.Delete(userID, postID); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

// ListPosts 列出最新帖子（最多100条，按创建时间倒序）
func (h *PostHandler) ListPosts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = service.MaxPostListLimit
	}

	posts, err := h.service.ListRecent(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterPostInfos(posts))
}

// ListPostsByAuthor 按作者标识符列出帖子
func (h *PostHandler) ListPostsByAuthor(c *gin.Context) {
	identifier := c.Param("identifier")
	posts, err := h.service.ListByAuthor(identifier)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterPostInfos(posts))
}

// parseID 解析路径中的数值ID
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

package handler

import (
	"github.com/ctoRVC/RV-Connect/internal/service"
	"github.com/ctoRVC/RV-Connect/pkg/jwt"
	"github.com/ctoRVC/RV-Connect/pkg/response"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友关系接口处理器
type FriendHandler struct {
	service *service.FriendService
}

// NewFriendHandler 创建FriendHandler实例
func NewFriendHandler(s *service.FriendService) *FriendHandler {
	return &FriendHandler{service: s}
}

// SendRequest 发送好友请求
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)

	type req struct {
		// 接收者标识符：数值ID或用户名
		Receiver string `json:"receiver" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.service.SendRequest(userID, r.Receiver)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, "好友请求已发送", response.FilterFriendRequestInfo(request))
}

// ListSent 列出某用户发出的好友请求（标识符为数值ID或用户名）
func (h *FriendHandler) ListSent(c *gin.Context) {
	identifier := c.Param("identifier")
	requests, err := h.service.ListSent(identifier)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterFriendRequestInfos(requests))
}

// ListReceived 列出某用户收到的好友请求
func (h *FriendHandler) ListReceived(c *gin.Context) {
	identifier := c.Param("identifier")
	requests, err := h.service.ListReceived(identifier)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterFriendRequestInfos(requests))
}

// AcceptRequest 接受好友请求（仅接收者本人）
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	requestID, err := parseID(c.Param("request_id"))
	if err != nil {
		response.BadRequest(c, "invalid request_id")
		return
	}

	friendship, err := h.service.Accept(userID, requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, "已接受好友请求", gin.H{
		"user_a_id": friendship.UserAID,
		"user_b_id": friendship.UserBID,
	})
}

// RejectRequest 拒绝好友请求（仅接收者本人）
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	requestID, err := parseID(c.Param("request_id"))
	if err != nil {
		response.BadRequest(c, "invalid request_id")
		return
	}
	if err := h.service.Reject(userID, requestID); err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, "已拒绝好友请求", nil)
}

// ListFriends 列出本人的全部好友（需要JWT认证）
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if userID == 0 {
		response.Unauthorized(c, "用户未认证")
		return
	}
	friends, err := h.service.ListFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfos(friends))
}

package handler

import (
	"github.com/ctoRVC/RV-Connect/internal/service"
	"github.com/ctoRVC/RV-Connect/pkg/jwt"
	"github.com/ctoRVC/RV-Connect/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户接口处理器
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler 创建UserHandler实例
func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.service.Register(r.Username, r.Email, r.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "注册成功", &response.RegisterResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// Login 用户登录
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
		Password        string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.service.Login(r.UsernameOrEmail, r.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessWithMessage(c, "登录成功", &response.LoginResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: token,
	})
}

// GetProfile 获取本人资料（需要JWT认证）
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if userID == 0 {
		response.Unauthorized(c, "用户未认证")
		return
	}
	user, err := h.service.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// GetUser 按标识符获取用户（数值ID或用户名）
func (h *UserHandler) GetUser(c *gin.Context) {
	identifier := c.Param("identifier")
	user, err := h.service.Resolve(identifier)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// SearchUsers 按用户名精确搜索用户
func (h *UserHandler) SearchUsers(c *gin.Context) {
	username := c.Query("username")
	users, err := h.service.Search(username)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfos(users))
}

// UpdateProfile 更新本人资料（需要JWT认证）
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if userID == 0 {
		response.Unauthorized(c, "用户未认证")
		return
	}

	type req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.service.UpdateProfile(userID, r.Username, r.Email, r.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.SuccessWithMessage(c, "更新成功", response.FilterUserInfo(user))
}

// DeleteAccount 删除本人账号（需要JWT认证）
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := jwt.GetUserIDUint(c)
	if userID == 0 {
		response.Unauthorized(c, "用户未认证")
		return
	}
	if err := h.service.Delete(userID); err != nil {
		respondError(c, err)
		return
	}
	response.NoContent(c)
}

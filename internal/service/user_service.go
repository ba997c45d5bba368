package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctoRVC/RV-Connect/internal/model"
	"github.com/ctoRVC/RV-Connect/pkg/jwt"
	"github.com/ctoRVC/RV-Connect/pkg/password"

	"gorm.io/gorm"
)

// UserService 用户服务
// emailDomain 为允许注册的邮箱域名后缀（例如 @rvce.edu.in）
type UserService struct {
	store       UserStore
	jwtService  *jwt.JWTService
	emailDomain string
}

// NewUserService 创建UserService实例
func NewUserService(store UserStore, jwtService *jwt.JWTService, emailDomain string) *UserService {
	return &UserService{store: store, jwtService: jwtService, emailDomain: emailDomain}
}

// Register 注册
// 邮箱域名在任何持久化之前校验；密码只存bcrypt哈希
func (s *UserService) Register(username, email, plainPassword string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || plainPassword == "" {
		return nil, "", validationErr("username and password are required")
	}
	if err := s.checkEmailDomain(email); err != nil {
		return nil, "", err
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.store.Create(user); err != nil {
		// 用户名/邮箱唯一索引冲突（并发注册由数据库兜底）
		return nil, "", validationErr("username or email already taken")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 登录
func (s *UserService) Login(identifier, plainPassword string) (*model.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plainPassword == "" {
		return nil, "", validationErr("identifier and password are required")
	}
	u, err := s.store.GetByUsernameOrEmail(identifier)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Resolve 双模标识符解析（数值ID优先，用户名兜底）
func (s *UserService) Resolve(identifier string) (*model.User, error) {
	return resolveUser(s.store, identifier)
}

// Search 按用户名精确搜索，返回零或多条
// 空的搜索词视为无效输入
func (s *UserService) Search(username string) ([]*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, validationErr("username parameter is required")
	}
	return s.store.SearchByUsername(username)
}

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*model.User, error) {
	u, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("user %d does not exist", id)
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile 更新本人资料，传空串的字段保持不变
// 修改邮箱时重新校验域名
func (s *UserService) UpdateProfile(userID uint, username, email, newPassword string) (*model.User, error) {
	u, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if username = strings.TrimSpace(username); username != "" {
		u.Username = username
	}
	if email = strings.TrimSpace(email); email != "" {
		if err := s.checkEmailDomain(email); err != nil {
			return nil, err
		}
		u.Email = email
	}
	if newPassword != "" {
		hash, err := password.Hash(newPassword)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.store.Update(u); err != nil {
		return nil, validationErr("username or email already taken")
	}
	return u, nil
}

// Delete 删除本人账号，关联数据按仓储层的级联策略清理
func (s *UserService) Delete(userID uint) error {
	if _, err := s.GetByID(userID); err != nil {
		return err
	}
	return s.store.Delete(userID)
}

// checkEmailDomain 校验邮箱域名后缀
func (s *UserService) checkEmailDomain(email string) error {
	if email == "" || !strings.HasSuffix(email, s.emailDomain) {
		return validationErr("email must end with %s", s.emailDomain)
	}
	return nil
}

// issueToken 为用户签发访问令牌
func (s *UserService) issueToken(u *model.User) (string, error) {
	return s.jwtService.GenerateToken(
		fmt.Sprintf("%d", u.ID),
		map[string]interface{}{"username": u.Username},
	)
}

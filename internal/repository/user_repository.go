package repository

import (
	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据仓储
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建UserRepository实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
// 用户名/邮箱的唯一性由数据库唯一索引保证，并发注册冲突时返回错误
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// GetByID 根据ID获取用户
func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByIDs 批量获取用户
func (r *UserRepository) GetByIDs(ids []uint) ([]*model.User, error) {
	var users []*model.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// GetByUsername 根据用户名精确查询用户
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var u model.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsernameOrEmail 根据用户名或邮箱查询用户（登录用）
func (r *UserRepository) GetByUsernameOrEmail(identifier string) (*model.User, error) {
	var u model.User
	if err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// SearchByUsername 按用户名精确匹配搜索，返回零或多条
func (r *UserRepository) SearchByUsername(username string) ([]*model.User, error) {
	var users []*model.User
	err := r.db.Where("username = ?", username).Find(&users).Error
	return users, err
}

// Update 保存用户变更
func (r *UserRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

// Delete 删除用户并级联清理关联数据
// 级联策略：删除该用户的帖子与评论，删除涉及该用户的好友关系与好友请求，
// 其他用户帖子中对该用户的提及置空（提及是软引用）
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 该用户帖子下的评论随帖子一起删除
		if err := tx.Where("post_id IN (?)",
			tx.Model(&model.Post{}).Select("id").Where("author_id = ?", id),
		).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("commenter_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).
			Delete(&model.FriendRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_a_id = ? OR user_b_id = ?", id, id).
			Delete(&model.Friendship{}).Error; err != nil {
			return err
		}
		// 提及置空
		if err := tx.Model(&model.Post{}).Where("mentioned_user_id = ?", id).
			Update("mentioned_user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}

package repository

import (
	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// PostRepository 帖子数据仓储
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建PostRepository实例
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create 创建帖子
func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// GetByID 根据ID获取帖子
func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 保存帖子变更
func (r *PostRepository) Update(post *model.Post) error {
	return r.db.Save(post).Error
}

// Delete 删除帖子及其评论（同一事务）
func (r *PostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// ListRecent 获取最新帖子，按创建时间倒序
// 时间相同时按ID倒序，保证排序结果确定
func (r *PostRepository) ListRecent(limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ListByAuthor 获取指定作者的所有帖子
func (r *PostRepository) ListByAuthor(authorID uint) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.Where("author_id = ?", authorID).Find(&posts).Error
	return posts, err
}

// ListAll 获取全部帖子（公开信息流用），按创建顺序
func (r *PostRepository) ListAll() ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.Order("id ASC").Find(&posts).Error
	return posts, err
}

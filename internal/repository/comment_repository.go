package repository

import (
	"github.com/ctoRVC/RV-Connect/internal/model"

	"gorm.io/gorm"
)

// CommentRepository 评论数据仓储
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建CommentRepository实例
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 根据ID获取评论
func (r *CommentRepository) GetByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost 获取帖子下的全部评论
func (r *CommentRepository) ListByPost(postID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// ListByCommenter 获取指定用户发表的全部评论
func (r *CommentRepository) ListByCommenter(commenterID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.Where("commenter_id = ?", commenterID).Find(&comments).Error
	return comments, err
}

// Delete 删除评论
func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Comment{}, id).Error
}
